package mapper

import "github.com/smallbiznis/chargify-bridge/internal/chargify/domain"

// PaymentProfileToProvider converts a canonical payment profile. The legacy
// aliases only fill first_name, last_name and cvv when those are blank.
func PaymentProfileToProvider(p *domain.PaymentProfile) domain.ProviderPaymentProfile {
	var out domain.ProviderPaymentProfile
	if p == nil {
		return out
	}
	out.ID = clone(p.ChargifyID)
	out.CustomerID = clone(p.CustomerID)
	out.PaymentType = clone(p.PaymentType)
	out.FirstName = coalesce(p.FirstName, p.FirstNameOnCard)
	out.LastName = coalesce(p.LastName, p.LastNameOnCard)
	out.FullNumber = clone(p.CreditCardNumber)
	out.ExpirationMonth = clone(p.ExpirationMonth)
	out.ExpirationYear = clone(p.ExpirationYear)
	out.CVV = coalesce(p.CVV, p.Code)
	out.BillingAddress = clone(p.BillingAddress1)
	out.BillingAddress2 = clone(p.BillingAddress2)
	out.BillingCity = clone(p.BillingCity)
	out.BillingState = clone(p.BillingState)
	out.BillingZip = clone(p.BillingZipCode)
	out.BillingCountry = clone(p.BillingCountry)
	out.BankName = clone(p.BankName)
	out.BankRoutingNumber = clone(p.BankRoutingNumber)
	out.BankAccountNumber = clone(p.BankAccountNumber)
	out.BankAccountType = clone(p.BankAccountType)
	out.BankAccountHolderType = clone(p.BankAccountHolderType)
	return out
}

// PaymentProfileToCanonical converts a provider payment profile. When the
// provider sends a masked card number it replaces creditCardNumber and the
// previously mapped value moves to originalCreditCardNumber.
func PaymentProfileToCanonical(p *domain.ProviderPaymentProfile, fallbackID string) domain.PaymentProfile {
	out := paymentProfileToCanonical(p)
	if domain.IsBlank(out.ID) && fallbackID != "" {
		out.ID = domain.TextOf(fallbackID)
	}
	return out
}

func paymentProfileToCanonical(p *domain.ProviderPaymentProfile) domain.PaymentProfile {
	var out domain.PaymentProfile
	if p == nil || p.IsEmpty() {
		return out
	}
	out.ChargifyID = clone(p.ID)
	out.CustomerID = clone(p.CustomerID)
	out.PaymentType = clone(p.PaymentType)
	out.FirstName = clone(p.FirstName)
	out.LastName = clone(p.LastName)
	out.CreditCardNumber = clone(p.FullNumber)
	if !domain.IsBlank(p.MaskedCardNumber) {
		out.OriginalCreditCardNumber = out.CreditCardNumber
		out.CreditCardNumber = clone(p.MaskedCardNumber)
	}
	out.CreditCardType = clone(p.CardType)
	out.ExpirationMonth = clone(p.ExpirationMonth)
	out.ExpirationYear = clone(p.ExpirationYear)
	out.CVV = clone(p.CVV)
	out.BillingAddress1 = clone(p.BillingAddress)
	out.BillingAddress2 = clone(p.BillingAddress2)
	out.BillingCity = clone(p.BillingCity)
	out.BillingState = clone(p.BillingState)
	out.BillingZipCode = clone(p.BillingZip)
	out.BillingCountry = clone(p.BillingCountry)
	out.BankName = clone(p.BankName)
	out.BankRoutingNumber = clone(p.BankRoutingNumber)
	out.BankAccountNumber = clone(p.BankAccountNumber)
	out.BankAccountType = clone(p.BankAccountType)
	out.BankAccountHolderType = clone(p.BankAccountHolderType)
	out.Removed = flag(p.Removed)

	out.FirstNameOnCard = clone(p.FirstName)
	out.LastNameOnCard = clone(p.LastName)
	out.Code = clone(p.CVV)
	return out
}
