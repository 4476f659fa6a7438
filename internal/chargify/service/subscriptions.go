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

func (s *Service) CreateSubscription(ctx context.Context, in *domain.Subscription) (domain.Subscription, error) {
	return call(ctx, s, "createSubscription", func(ctx context.Context) (domain.Subscription, error) {
		provider := mapper.SubscriptionToProvider(in)
		s.logger(ctx).Info("subscription to create", zap.Any("payload", logger.MaskPayload(provider)))

		if err := validation.CheckSubscription(provider); err != nil {
			return domain.Subscription{}, err
		}
		doc, err := s.do(ctx, domain.OpCreate, domain.KindSubscription, routing.Address{}, provider)
		return s.subscriptionResult(ctx, "subscription created", in, doc, err)
	})
}

func (s *Service) UpdateSubscription(ctx context.Context, in *domain.Subscription) (domain.Subscription, error) {
	return call(ctx, s, "updateSubscription", func(ctx context.Context) (domain.Subscription, error) {
		provider := mapper.SubscriptionToProvider(in)
		s.logger(ctx).Info("subscription to update", zap.Any("payload", logger.MaskPayload(provider)))

		if err := validation.CheckNonEmpty(domain.KindSubscription.Label(), provider); err != nil {
			return domain.Subscription{}, err
		}
		id, err := validation.CheckProviderID(provider.ID)
		if err != nil {
			return domain.Subscription{}, err
		}
		doc, err := s.do(ctx, domain.OpUpdate, domain.KindSubscription, routing.Address{ProviderID: id}, provider)
		return s.subscriptionResult(ctx, "subscription updated", in, doc, err)
	})
}

// CancelSubscription cancels immediately. A subscription the provider no
// longer knows is reported as not canceled.
func (s *Service) CancelSubscription(ctx context.Context, in *domain.Subscription) (domain.SubscriptionCancellation, error) {
	return call(ctx, s, "cancelSubscription", func(ctx context.Context) (domain.SubscriptionCancellation, error) {
		provider := mapper.SubscriptionToProvider(in)
		if err := validation.CheckNonEmpty(domain.KindSubscription.Label(), provider); err != nil {
			return domain.SubscriptionCancellation{}, err
		}
		id, err := validation.CheckProviderID(provider.ID)
		if err != nil {
			return domain.SubscriptionCancellation{}, err
		}
		s.logger(ctx).Info("subscription to cancel", zap.Int64("chargify_id", id))

		_, err = s.do(ctx, domain.OpDelete, domain.KindSubscription, routing.Address{ProviderID: id}, nil)
		canceled, err := response.Removal(response.Classify(domain.KindSubscription, err))
		if err != nil {
			return domain.SubscriptionCancellation{}, err
		}
		s.logger(ctx).Info("subscription cancellation", zap.Int64("chargify_id", id), zap.Bool("canceled", canceled))
		return domain.SubscriptionCancellation{ID: id, Canceled: canceled}, nil
	})
}

func (s *Service) subscriptionResult(ctx context.Context, msg string, in *domain.Subscription, doc domain.Document, err error) (domain.Subscription, error) {
	out, err := response.Decode[domain.ProviderSubscription](domain.KindSubscription, doc, err)
	if err != nil {
		return domain.Subscription{}, err
	}
	s.logger(ctx).Info(msg, zap.Any("payload", logger.MaskPayload(out)))

	var ref string
	if in != nil {
		ref = domain.Value(in.ID)
	}
	return mapper.SubscriptionToCanonical(&out, ref), nil
}
