package mapper

import "github.com/smallbiznis/chargify-bridge/internal/chargify/domain"

// CustomerToProvider converts a canonical customer into the wire shape.
// Read-only fields (timestamps, removed) are never sent.
func CustomerToProvider(c *domain.Customer) domain.ProviderCustomer {
	var out domain.ProviderCustomer
	if c == nil {
		return out
	}
	out.Reference = clone(c.ID)
	out.ID = clone(c.ChargifyID)
	out.FirstName = clone(c.FirstName)
	out.LastName = clone(c.LastName)
	out.Email = clone(c.Email)
	out.Organization = clone(c.Organization)
	out.VATNumber = clone(c.VAT)
	out.Address = clone(c.ShippingAddress1)
	out.Address2 = clone(c.ShippingAddress2)
	out.City = clone(c.ShippingCity)
	out.State = clone(c.ShippingState)
	out.Zip = clone(c.ShippingZipCode)
	out.Country = clone(c.ShippingCountry)
	out.Phone = clone(c.Phone)
	return out
}

// CustomerToCanonical converts a provider customer. fallbackID replaces a
// blank canonical id after mapping.
func CustomerToCanonical(p *domain.ProviderCustomer, fallbackID string) domain.Customer {
	out := customerToCanonical(p)
	if domain.IsBlank(out.ID) && fallbackID != "" {
		out.ID = domain.TextOf(fallbackID)
	}
	return out
}

func customerToCanonical(p *domain.ProviderCustomer) domain.Customer {
	var out domain.Customer
	if p == nil || p.IsEmpty() {
		return out
	}
	out.ID = clone(p.Reference)
	out.ChargifyID = clone(p.ID)
	out.FirstName = clone(p.FirstName)
	out.LastName = clone(p.LastName)
	out.Email = clone(p.Email)
	out.Organization = clone(p.Organization)
	out.VAT = clone(p.VATNumber)
	out.ShippingAddress1 = clone(p.Address)
	out.ShippingAddress2 = clone(p.Address2)
	out.ShippingCity = clone(p.City)
	out.ShippingState = clone(p.State)
	out.ShippingZipCode = clone(p.Zip)
	out.ShippingCountry = clone(p.Country)
	out.Phone = clone(p.Phone)
	out.CreatedAt = clone(p.CreatedAt)
	out.UpdatedAt = clone(p.UpdatedAt)
	out.Removed = flag(p.Removed)
	return out
}
