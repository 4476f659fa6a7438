package service

import (
	"context"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/mapper"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/response"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/routing"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/validation"
	"github.com/smallbiznis/chargify-bridge/internal/observability/logger"
	"go.uber.org/zap"
)

// CreatePaymentProfile stores a card or bank account for an existing
// customer. A blank payment type is sent as credit_card.
func (s *Service) CreatePaymentProfile(ctx context.Context, in *domain.PaymentProfile) (domain.PaymentProfile, error) {
	return call(ctx, s, "createPaymentProfile", func(ctx context.Context) (domain.PaymentProfile, error) {
		provider := mapper.PaymentProfileToProvider(in)
		s.logger(ctx).Info("payment profile to create", zap.Any("payload", logger.MaskPayload(provider)))

		normalized, err := validation.CheckPaymentProfile(provider)
		if err != nil {
			return domain.PaymentProfile{}, err
		}
		doc, err := s.do(ctx, domain.OpCreate, domain.KindPaymentProfile, routing.Address{}, normalized)
		return s.paymentProfileResult(ctx, "payment profile created", in, doc, err)
	})
}

func (s *Service) UpdatePaymentProfile(ctx context.Context, in *domain.PaymentProfile) (domain.PaymentProfile, error) {
	return call(ctx, s, "updatePaymentProfile", func(ctx context.Context) (domain.PaymentProfile, error) {
		provider := mapper.PaymentProfileToProvider(in)
		s.logger(ctx).Info("payment profile to update", zap.Any("payload", logger.MaskPayload(provider)))

		if err := validation.CheckNonEmpty(domain.KindPaymentProfile.Label(), provider); err != nil {
			return domain.PaymentProfile{}, err
		}
		id, err := validation.CheckProviderID(provider.ID)
		if err != nil {
			return domain.PaymentProfile{}, err
		}
		doc, err := s.do(ctx, domain.OpUpdate, domain.KindPaymentProfile, routing.Address{ProviderID: id}, provider)
		return s.paymentProfileResult(ctx, "payment profile updated", in, doc, err)
	})
}

func (s *Service) paymentProfileResult(ctx context.Context, msg string, in *domain.PaymentProfile, doc domain.Document, err error) (domain.PaymentProfile, error) {
	out, err := response.Decode[domain.ProviderPaymentProfile](domain.KindPaymentProfile, doc, err)
	if err != nil {
		return domain.PaymentProfile{}, err
	}
	s.logger(ctx).Info(msg, zap.Any("payload", logger.MaskPayload(out)))

	var ref string
	if in != nil {
		ref = domain.Value(in.ID)
	}
	return mapper.PaymentProfileToCanonical(&out, ref), nil
}
