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

func (s *Service) CreateCustomer(ctx context.Context, in *domain.Customer) (domain.Customer, error) {
	return call(ctx, s, "createCustomer", func(ctx context.Context) (domain.Customer, error) {
		provider := mapper.CustomerToProvider(in)
		s.logger(ctx).Info("customer to create", zap.Any("payload", logger.MaskPayload(provider)))

		if err := validation.CheckCustomer(provider); err != nil {
			return domain.Customer{}, err
		}
		doc, err := s.do(ctx, domain.OpCreate, domain.KindCustomer, routing.Address{}, provider)
		return s.customerResult(ctx, "customer created", in, doc, err)
	})
}

func (s *Service) UpdateCustomer(ctx context.Context, in *domain.Customer) (domain.Customer, error) {
	return call(ctx, s, "updateCustomer", func(ctx context.Context) (domain.Customer, error) {
		provider := mapper.CustomerToProvider(in)
		s.logger(ctx).Info("customer to update", zap.Any("payload", logger.MaskPayload(provider)))

		if err := validation.CheckNonEmpty(domain.KindCustomer.Label(), provider); err != nil {
			return domain.Customer{}, err
		}
		id, err := validation.CheckProviderID(provider.ID)
		if err != nil {
			return domain.Customer{}, err
		}
		doc, err := s.do(ctx, domain.OpUpdate, domain.KindCustomer, routing.Address{ProviderID: id}, provider)
		return s.customerResult(ctx, "customer updated", in, doc, err)
	})
}

func (s *Service) FindCustomerByChargifyID(ctx context.Context, in *domain.Customer) (domain.Customer, error) {
	return call(ctx, s, "findCustomerByChargifyId", func(ctx context.Context) (domain.Customer, error) {
		provider := mapper.CustomerToProvider(in)
		if err := validation.CheckNonEmpty(domain.KindCustomer.Label(), provider); err != nil {
			return domain.Customer{}, err
		}
		id, err := validation.CheckProviderID(provider.ID)
		if err != nil {
			return domain.Customer{}, err
		}
		s.logger(ctx).Info("customer to find", zap.Int64("chargify_id", id))

		doc, err := s.do(ctx, domain.OpRead, domain.KindCustomer, routing.Address{ProviderID: id}, nil)
		return s.customerResult(ctx, "customer found", in, doc, err)
	})
}

func (s *Service) FindCustomerByID(ctx context.Context, in *domain.Customer) (domain.Customer, error) {
	return call(ctx, s, "findCustomerById", func(ctx context.Context) (domain.Customer, error) {
		provider := mapper.CustomerToProvider(in)
		if err := validation.CheckNonEmpty(domain.KindCustomer.Label(), provider); err != nil {
			return domain.Customer{}, err
		}
		reference, err := validation.CheckExternalReference(provider.Reference)
		if err != nil {
			return domain.Customer{}, err
		}
		s.logger(ctx).Info("customer to find", zap.String("reference", reference))

		doc, err := s.do(ctx, domain.OpRead, domain.KindCustomer, routing.Address{Reference: reference}, nil)
		return s.customerResult(ctx, "customer found", in, doc, err)
	})
}

// RemoveCustomer deletes the customer. A customer that no longer exists is
// reported as not removed rather than as an error.
func (s *Service) RemoveCustomer(ctx context.Context, in *domain.Customer) (domain.CustomerRemoval, error) {
	return call(ctx, s, "removeCustomer", func(ctx context.Context) (domain.CustomerRemoval, error) {
		provider := mapper.CustomerToProvider(in)
		if err := validation.CheckNonEmpty(domain.KindCustomer.Label(), provider); err != nil {
			return domain.CustomerRemoval{}, err
		}
		id, err := validation.CheckProviderID(provider.ID)
		if err != nil {
			return domain.CustomerRemoval{}, err
		}
		s.logger(ctx).Info("customer to remove", zap.Int64("chargify_id", id))

		_, err = s.do(ctx, domain.OpDelete, domain.KindCustomer, routing.Address{ProviderID: id}, nil)
		removed, err := response.Removal(response.Classify(domain.KindCustomer, err))
		if err != nil {
			return domain.CustomerRemoval{}, err
		}
		s.logger(ctx).Info("customer removal", zap.Int64("chargify_id", id), zap.Bool("removed", removed))
		return domain.CustomerRemoval{ID: id, Removed: removed}, nil
	})
}

func (s *Service) customerResult(ctx context.Context, msg string, in *domain.Customer, doc domain.Document, err error) (domain.Customer, error) {
	out, err := response.Decode[domain.ProviderCustomer](domain.KindCustomer, doc, err)
	if err != nil {
		return domain.Customer{}, err
	}
	s.logger(ctx).Info(msg, zap.Any("payload", logger.MaskPayload(out)))
	return mapper.CustomerToCanonical(&out, customerRef(in)), nil
}

// customerRef is the platform id echoed back when the provider omits it.
func customerRef(in *domain.Customer) string {
	if in == nil {
		return ""
	}
	return domain.Value(in.ID)
}
