package mapper

import (
	"encoding/json"
	"testing"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRoundTrip(t *testing.T) {
	in := domain.Customer{
		ID:               domain.TextOf("c1"),
		ChargifyID:       domain.NumericOf(77),
		FirstName:        domain.TextOf("Ada"),
		LastName:         domain.TextOf("Lovelace"),
		Email:            domain.TextOf("ada@example.com"),
		Organization:     domain.TextOf("Analytical"),
		VAT:              domain.TextOf("GB123"),
		ShippingAddress1: domain.TextOf("1 Road"),
		ShippingAddress2: domain.TextOf("Flat 2"),
		ShippingCity:     domain.TextOf("London"),
		ShippingState:    domain.TextOf("LDN"),
		ShippingZipCode:  domain.TextOf("N1"),
		ShippingCountry:  domain.TextOf("GB"),
		Phone:            domain.TextOf("+44"),
	}

	provider := CustomerToProvider(&in)
	out := CustomerToCanonical(&provider, "")

	out.Removed = nil
	assert.Equal(t, in, out)
}

func TestCustomerToProviderKeepsPresence(t *testing.T) {
	in := domain.Customer{
		ID:        domain.TextOf("c1"),
		FirstName: domain.TextOf(""),
	}

	body, err := json.Marshal(CustomerToProvider(&in))
	require.NoError(t, err)
	assert.JSONEq(t, `{"reference":"c1","first_name":""}`, string(body))
}

func TestCustomerToProviderDoesNotAlias(t *testing.T) {
	in := domain.Customer{Email: domain.TextOf("a@b.co")}
	out := CustomerToProvider(&in)

	*out.Email = "changed"
	assert.Equal(t, "a@b.co", domain.Value(in.Email))
}

func TestCustomerToCanonicalFallbackID(t *testing.T) {
	t.Run("blank reference", func(t *testing.T) {
		out := CustomerToCanonical(&domain.ProviderCustomer{ID: domain.NumericOf(5)}, "fallback")
		assert.Equal(t, "fallback", domain.Value(out.ID))
		assert.Equal(t, "5", domain.Value(out.ChargifyID))
		require.NotNil(t, out.Removed)
		assert.False(t, *out.Removed)
	})

	t.Run("reference wins", func(t *testing.T) {
		out := CustomerToCanonical(&domain.ProviderCustomer{Reference: domain.TextOf("c1")}, "fallback")
		assert.Equal(t, "c1", domain.Value(out.ID))
	})

	t.Run("empty input", func(t *testing.T) {
		out := CustomerToCanonical(nil, "")
		assert.True(t, out.IsEmpty())
	})
}

func TestCustomerToCanonicalDropsUnknownFields(t *testing.T) {
	var provider domain.ProviderCustomer
	require.NoError(t, json.Unmarshal([]byte(`{"id":"77","reference":"c1","first_name":"A","portal_customer_created_at":"x"}`), &provider))

	body, err := json.Marshal(CustomerToCanonical(&provider, ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","chargifyId":77,"firstName":"A","removed":false}`, string(body))
}

func TestPaymentProfileRoundTrip(t *testing.T) {
	in := domain.PaymentProfile{
		ChargifyID:            domain.NumericOf(9),
		CustomerID:            domain.NumericOf(77),
		PaymentType:           domain.TextOf("bank_account"),
		FirstName:             domain.TextOf("Ada"),
		LastName:              domain.TextOf("Lovelace"),
		CreditCardNumber:      domain.TextOf("4111111111111111"),
		ExpirationMonth:       domain.TextOf("12"),
		ExpirationYear:        domain.TextOf("2030"),
		CVV:                   domain.TextOf("123"),
		BillingAddress1:       domain.TextOf("1 Road"),
		BillingAddress2:       domain.TextOf("Flat 2"),
		BillingCity:           domain.TextOf("London"),
		BillingState:          domain.TextOf("LDN"),
		BillingZipCode:        domain.TextOf("N1"),
		BillingCountry:        domain.TextOf("GB"),
		BankName:              domain.TextOf("Bank"),
		BankRoutingNumber:     domain.TextOf("0001"),
		BankAccountNumber:     domain.TextOf("1234"),
		BankAccountType:       domain.TextOf("checking"),
		BankAccountHolderType: domain.TextOf("personal"),
	}

	provider := PaymentProfileToProvider(&in)
	out := PaymentProfileToCanonical(&provider, "")

	assert.Equal(t, in.FirstName, out.FirstName)
	assert.Equal(t, in.LastName, out.LastName)
	assert.Equal(t, in.CVV, out.CVV)
	assert.Equal(t, in.FirstName, out.FirstNameOnCard)
	assert.Equal(t, in.LastName, out.LastNameOnCard)
	assert.Equal(t, in.CVV, out.Code)

	out.FirstNameOnCard, out.LastNameOnCard, out.Code, out.Removed = nil, nil, nil, nil
	assert.Equal(t, in, out)
}

func TestPaymentProfileAliases(t *testing.T) {
	t.Run("alias fills blank primary", func(t *testing.T) {
		out := PaymentProfileToProvider(&domain.PaymentProfile{
			FirstNameOnCard: domain.TextOf("Ada"),
			LastNameOnCard:  domain.TextOf("Lovelace"),
			Code:            domain.TextOf("999"),
		})
		assert.Equal(t, "Ada", domain.Value(out.FirstName))
		assert.Equal(t, "Lovelace", domain.Value(out.LastName))
		assert.Equal(t, "999", domain.Value(out.CVV))
	})

	t.Run("primary is never overwritten", func(t *testing.T) {
		out := PaymentProfileToProvider(&domain.PaymentProfile{
			FirstName:       domain.TextOf("Grace"),
			FirstNameOnCard: domain.TextOf("Ada"),
			CVV:             domain.TextOf("123"),
			Code:            domain.TextOf("999"),
		})
		assert.Equal(t, "Grace", domain.Value(out.FirstName))
		assert.Equal(t, "123", domain.Value(out.CVV))
	})
}

func TestPaymentProfileMasking(t *testing.T) {
	out := PaymentProfileToCanonical(&domain.ProviderPaymentProfile{
		ID:               domain.NumericOf(9),
		FullNumber:       domain.TextOf("4111111111111111"),
		MaskedCardNumber: domain.TextOf("XXXX-XXXX-XXXX-1111"),
	}, "pp1")

	assert.Equal(t, "XXXX-XXXX-XXXX-1111", domain.Value(out.CreditCardNumber))
	assert.Equal(t, "4111111111111111", domain.Value(out.OriginalCreditCardNumber))
	assert.Equal(t, "pp1", domain.Value(out.ID))

	unmasked := PaymentProfileToCanonical(&domain.ProviderPaymentProfile{
		FullNumber: domain.TextOf("4111111111111111"),
	}, "")
	assert.Equal(t, "4111111111111111", domain.Value(unmasked.CreditCardNumber))
	assert.Nil(t, unmasked.OriginalCreditCardNumber)
}

func TestSubscriptionRoundTrip(t *testing.T) {
	in := domain.Subscription{
		ChargifyID:              domain.NumericOf(3),
		State:                   domain.TextOf("active"),
		PreviousState:           domain.TextOf("trialing"),
		CustomerID:              domain.NumericOf(77),
		PaymentProfileID:        domain.NumericOf(9),
		ProductHandle:           domain.TextOf("basic"),
		CancellationMessage:     domain.TextOf("bye"),
		CouponCode:              domain.TextOf("SAVE"),
		PaymentCollectionMethod: domain.TextOf("automatic"),
	}

	provider := SubscriptionToProvider(&in)
	out := SubscriptionToCanonical(&provider, "")

	out.Canceled = nil
	assert.Equal(t, in, out)
}

func TestSubscriptionNestedBackfill(t *testing.T) {
	var provider domain.ProviderSubscription
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 3,
		"state": "active",
		"customer": {"id": 77, "reference": "c1", "first_name": "A"},
		"credit_card": {"id": 9, "customer_id": 77, "masked_card_number": "XXXX-1111"},
		"bank_account": {"id": 10},
		"product": {"id": 4, "handle": "basic", "product_family": {"handle": "core"}}
	}`), &provider))

	out := SubscriptionToCanonical(&provider, "s1")

	assert.Equal(t, "s1", domain.Value(out.ID))
	assert.Equal(t, "77", domain.Value(out.CustomerID))
	assert.Equal(t, "9", domain.Value(out.PaymentProfileID))
	assert.Equal(t, "basic", domain.Value(out.ProductHandle))
	require.NotNil(t, out.Customer)
	assert.Equal(t, "c1", domain.Value(out.Customer.ID))
	require.NotNil(t, out.PaymentProfile)
	assert.Equal(t, "XXXX-1111", domain.Value(out.PaymentProfile.CreditCardNumber))
	require.NotNil(t, out.Product)
	require.NotNil(t, out.Product.Family)
	assert.Equal(t, "core", domain.Value(out.Product.Family.Handle))
}

func TestSubscriptionOuterReferenceWins(t *testing.T) {
	out := SubscriptionToCanonical(&domain.ProviderSubscription{
		CustomerID: domain.NumericOf(1),
		Customer:   &domain.ProviderCustomer{ID: domain.NumericOf(2)},
	}, "")

	assert.Equal(t, "1", domain.Value(out.CustomerID))
}

func TestSubscriptionPaymentProfileSelection(t *testing.T) {
	base := func(paymentType *domain.Text) *domain.ProviderSubscription {
		return &domain.ProviderSubscription{
			ID:          domain.NumericOf(3),
			PaymentType: paymentType,
			CreditCard:  &domain.ProviderPaymentProfile{ID: domain.NumericOf(9)},
			BankAccount: &domain.ProviderPaymentProfile{ID: domain.NumericOf(10)},
		}
	}

	tests := []struct {
		name        string
		paymentType *domain.Text
		want        string
	}{
		{name: "absent", paymentType: nil, want: "9"},
		{name: "credit card", paymentType: domain.TextOf("CREDIT_CARD"), want: "9"},
		{name: "bank account", paymentType: domain.TextOf("bank_account"), want: "10"},
		{name: "unknown", paymentType: domain.TextOf("paypal"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SubscriptionToCanonical(base(tt.paymentType), "")
			if tt.want == "" {
				assert.Nil(t, out.PaymentProfile)
				assert.Nil(t, out.PaymentProfileID)
				return
			}
			require.NotNil(t, out.PaymentProfile)
			assert.Equal(t, tt.want, domain.Value(out.PaymentProfileID))
		})
	}
}

func TestProductRoundTrip(t *testing.T) {
	in := domain.Product{
		ChargifyID:             domain.NumericOf(4),
		Handle:                 domain.TextOf("basic"),
		Name:                   domain.TextOf("Basic"),
		Description:            domain.TextOf("Entry plan"),
		Family:                 &domain.ProductFamily{Handle: domain.TextOf("core"), Name: domain.TextOf("Core")},
		IntervalUnit:           domain.TextOf("month"),
		Interval:               domain.NumericOf(1),
		InitialChargeInCents:   domain.NumericOf(0),
		TrialPriceInCents:      domain.NumericOf(100),
		TrialInterval:          domain.NumericOf(14),
		TrialIntervalUnit:      domain.TextOf("day"),
		ExpirationInterval:     domain.NumericOf(12),
		ExpirationIntervalUnit: domain.TextOf("month"),
		VersionNumber:          domain.NumericOf(2),
		CreatedAt:              domain.TextOf("2024-01-01T00:00:00Z"),
		UpdatedAt:              domain.TextOf("2024-02-01T00:00:00Z"),
		ArchivedAt:             domain.TextOf("2024-03-01T00:00:00Z"),
	}

	provider := ProductToProvider(&in)
	out := ProductToCanonical(&provider)

	out.Removed = nil
	assert.Equal(t, in, out)
}
