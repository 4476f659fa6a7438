package validation

import (
	"strings"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

const (
	PaymentTypeCreditCard  = "credit_card"
	PaymentTypeBankAccount = "bank_account"
)

var CustomerRules = []Rule[domain.ProviderCustomer]{
	{Field: "firstName", Value: func(c domain.ProviderCustomer) *domain.Text { return c.FirstName }},
	{Field: "lastName", Value: func(c domain.ProviderCustomer) *domain.Text { return c.LastName }},
	{Field: "email", Value: func(c domain.ProviderCustomer) *domain.Text { return c.Email }},
}

var bankAccountRules = []Rule[domain.ProviderPaymentProfile]{
	{Field: "bankName", Value: func(p domain.ProviderPaymentProfile) *domain.Text { return p.BankName }},
	{Field: "bankRoutingNumber", Value: func(p domain.ProviderPaymentProfile) *domain.Text { return p.BankRoutingNumber }},
	{Field: "bankAccountNumber", Value: func(p domain.ProviderPaymentProfile) *domain.Text { return p.BankAccountNumber }},
}

var creditCardRules = []Rule[domain.ProviderPaymentProfile]{
	{Field: "creditCardNumber", Value: func(p domain.ProviderPaymentProfile) *domain.Text { return p.FullNumber }},
	{Field: "expirationMonth", Value: func(p domain.ProviderPaymentProfile) *domain.Text { return p.ExpirationMonth }},
	{Field: "expirationYear", Value: func(p domain.ProviderPaymentProfile) *domain.Text { return p.ExpirationYear }},
}

// PaymentProfileRules returns the required fields for the profile's
// payment type. Anything other than a bank account follows the card rules.
func PaymentProfileRules(p domain.ProviderPaymentProfile) []Rule[domain.ProviderPaymentProfile] {
	if strings.EqualFold(strings.TrimSpace(domain.Value(p.PaymentType)), PaymentTypeBankAccount) {
		return bankAccountRules
	}
	return creditCardRules
}

// NormalizePaymentType returns a copy of p with a blank payment type set to
// credit_card. Other values are matched case-insensitively and left as sent.
func NormalizePaymentType(p domain.ProviderPaymentProfile) (domain.ProviderPaymentProfile, error) {
	if domain.IsBlank(p.PaymentType) {
		p.PaymentType = domain.TextOf(PaymentTypeCreditCard)
		return p, nil
	}
	value := strings.ToLower(string(*p.PaymentType))
	if value != PaymentTypeCreditCard && value != PaymentTypeBankAccount {
		return p, domain.Argumentf(
			"Invalid paymentType [%s]. Valid values: empty (credit card), '%s' and '%s'",
			string(*p.PaymentType), PaymentTypeCreditCard, PaymentTypeBankAccount,
		)
	}
	return p, nil
}

// CheckCustomer validates a customer create.
func CheckCustomer(c domain.ProviderCustomer) error {
	if err := CheckNonEmpty(domain.KindCustomer.Label(), c); err != nil {
		return err
	}
	return RaiseIfAny(CheckRequiredFields(c, CustomerRules))
}

// CheckPaymentProfile validates a payment profile create and returns the
// normalized profile to send.
func CheckPaymentProfile(p domain.ProviderPaymentProfile) (domain.ProviderPaymentProfile, error) {
	if err := CheckNonEmpty(domain.KindPaymentProfile.Label(), p); err != nil {
		return p, err
	}
	if _, err := CheckCustomerID(p.CustomerID); err != nil {
		return p, err
	}
	normalized, err := NormalizePaymentType(p)
	if err != nil {
		return p, err
	}
	if err := RaiseIfAny(CheckRequiredFields(normalized, PaymentProfileRules(normalized))); err != nil {
		return p, err
	}
	return normalized, nil
}

// CheckSubscription validates a subscription create. Only the first
// offending reference is reported.
func CheckSubscription(s domain.ProviderSubscription) error {
	if err := CheckNonEmpty(domain.KindSubscription.Label(), s); err != nil {
		return err
	}
	if _, err := CheckCustomerID(s.CustomerID); err != nil {
		return err
	}
	if _, err := CheckPaymentProfileID(s.PaymentProfileID); err != nil {
		return err
	}
	if domain.IsBlank(s.ProductHandle) {
		return domain.Argumentf("Invalid product handle [%s]", domain.Literal(s.ProductHandle))
	}
	return nil
}
