package mapper

import "github.com/smallbiznis/chargify-bridge/internal/chargify/domain"

// ProductToCanonical converts a provider product. Products are never
// written; they only arrive nested in subscriptions.
func ProductToCanonical(p *domain.ProviderProduct) domain.Product {
	var out domain.Product
	if p == nil || p.IsEmpty() {
		return out
	}
	out.ChargifyID = clone(p.ID)
	out.Handle = clone(p.Handle)
	out.Name = clone(p.Name)
	out.Description = clone(p.Description)
	if p.ProductFamily != nil {
		out.Family = &domain.ProductFamily{
			Handle:      clone(p.ProductFamily.Handle),
			Name:        clone(p.ProductFamily.Name),
			Description: clone(p.ProductFamily.Description),
		}
	}
	out.IntervalUnit = clone(p.IntervalUnit)
	out.Interval = clone(p.Interval)
	out.InitialChargeInCents = clone(p.InitialChargeInCents)
	out.TrialPriceInCents = clone(p.TrialPriceInCents)
	out.TrialInterval = clone(p.TrialInterval)
	out.TrialIntervalUnit = clone(p.TrialIntervalUnit)
	out.ExpirationInterval = clone(p.ExpirationInterval)
	out.ExpirationIntervalUnit = clone(p.ExpirationIntervalUnit)
	out.VersionNumber = clone(p.VersionNumber)
	out.CreatedAt = clone(p.CreatedAt)
	out.UpdatedAt = clone(p.UpdatedAt)
	out.ArchivedAt = clone(p.ArchivedAt)
	out.Removed = flag(p.Removed)
	return out
}

// ProductToProvider is the inverse of ProductToCanonical for the declared
// fields. Removed is provider-owned and not copied back.
func ProductToProvider(p *domain.Product) domain.ProviderProduct {
	var out domain.ProviderProduct
	if p == nil {
		return out
	}
	out.ID = clone(p.ChargifyID)
	out.Handle = clone(p.Handle)
	out.Name = clone(p.Name)
	out.Description = clone(p.Description)
	if p.Family != nil {
		out.ProductFamily = &domain.ProviderProductFamily{
			Handle:      clone(p.Family.Handle),
			Name:        clone(p.Family.Name),
			Description: clone(p.Family.Description),
		}
	}
	out.IntervalUnit = clone(p.IntervalUnit)
	out.Interval = clone(p.Interval)
	out.InitialChargeInCents = clone(p.InitialChargeInCents)
	out.TrialPriceInCents = clone(p.TrialPriceInCents)
	out.TrialInterval = clone(p.TrialInterval)
	out.TrialIntervalUnit = clone(p.TrialIntervalUnit)
	out.ExpirationInterval = clone(p.ExpirationInterval)
	out.ExpirationIntervalUnit = clone(p.ExpirationIntervalUnit)
	out.VersionNumber = clone(p.VersionNumber)
	out.CreatedAt = clone(p.CreatedAt)
	out.UpdatedAt = clone(p.UpdatedAt)
	out.ArchivedAt = clone(p.ArchivedAt)
	return out
}
