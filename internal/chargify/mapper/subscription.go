package mapper

import (
	"strings"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

const (
	paymentTypeCreditCard  = "credit_card"
	paymentTypeBankAccount = "bank_account"
)

// SubscriptionToProvider converts the writable part of a subscription.
// Nested customer, payment profile and product objects are read-only and
// are never sent; references go out as ids and handles.
func SubscriptionToProvider(s *domain.Subscription) domain.ProviderSubscription {
	var out domain.ProviderSubscription
	if s == nil {
		return out
	}
	out.ID = clone(s.ChargifyID)
	out.State = clone(s.State)
	out.PreviousState = clone(s.PreviousState)
	out.CustomerID = clone(s.CustomerID)
	out.PaymentProfileID = clone(s.PaymentProfileID)
	out.ProductHandle = clone(s.ProductHandle)
	out.CancellationMessage = clone(s.CancellationMessage)
	out.CouponCode = clone(s.CouponCode)
	out.PaymentCollectionMethod = clone(s.PaymentCollectionMethod)
	return out
}

// SubscriptionToCanonical converts a provider subscription including its
// nested objects. Blank outer references are back-filled from the nested
// object ids.
func SubscriptionToCanonical(p *domain.ProviderSubscription, fallbackID string) domain.Subscription {
	out := subscriptionToCanonical(p)
	if domain.IsBlank(out.ID) && fallbackID != "" {
		out.ID = domain.TextOf(fallbackID)
	}
	return out
}

func subscriptionToCanonical(p *domain.ProviderSubscription) domain.Subscription {
	var out domain.Subscription
	if p == nil || p.IsEmpty() {
		return out
	}
	out.ChargifyID = clone(p.ID)
	out.State = clone(p.State)
	out.PreviousState = clone(p.PreviousState)
	out.CustomerID = clone(p.CustomerID)
	out.PaymentProfileID = clone(p.PaymentProfileID)
	out.ProductHandle = clone(p.ProductHandle)
	out.CreatedAt = clone(p.CreatedAt)
	out.UpdatedAt = clone(p.UpdatedAt)
	out.ArchivedAt = clone(p.ArchivedAt)
	out.CurrentPeriodStartedAt = clone(p.CurrentPeriodStartedAt)
	out.CurrentPeriodEndsAt = clone(p.CurrentPeriodEndsAt)
	out.NextAssessmentAt = clone(p.NextAssessmentAt)
	out.DelayedCancelAt = clone(p.DelayedCancelAt)
	out.ExpiresAt = clone(p.ExpiresAt)
	out.CanceledAt = clone(p.CanceledAt)
	out.CancellationMessage = clone(p.CancellationMessage)
	out.CancelAtEndOfPeriod = clone(p.CancelAtEndOfPeriod)
	out.BalanceInCents = clone(p.BalanceInCents)
	out.CouponCode = clone(p.CouponCode)
	out.PaymentCollectionMethod = clone(p.PaymentCollectionMethod)
	out.ProductPriceInCents = clone(p.ProductPriceInCents)
	out.ProductVersionNumber = clone(p.ProductVersionNumber)
	out.SignupPaymentID = clone(p.SignupPaymentID)
	out.SignupRevenue = clone(p.SignupRevenue)
	out.TotalRevenueInCents = clone(p.TotalRevenueInCents)
	out.TrialStartedAt = clone(p.TrialStartedAt)
	out.TrialEndedAt = clone(p.TrialEndedAt)
	out.Canceled = flag(p.Canceled)

	if p.Customer != nil && !p.Customer.IsEmpty() {
		customer := customerToCanonical(p.Customer)
		out.Customer = &customer
		if domain.IsBlank(out.CustomerID) {
			out.CustomerID = clone(customer.ChargifyID)
		}
	}

	if embedded := selectPaymentProfile(p); embedded != nil && !embedded.IsEmpty() {
		profile := paymentProfileToCanonical(embedded)
		out.PaymentProfile = &profile
		if domain.IsBlank(out.PaymentProfileID) {
			out.PaymentProfileID = clone(profile.ChargifyID)
		}
	}

	if p.Product != nil && !p.Product.IsEmpty() {
		product := ProductToCanonical(p.Product)
		out.Product = &product
		if domain.IsBlank(out.ProductHandle) {
			out.ProductHandle = clone(product.Handle)
		}
	}
	return out
}

// selectPaymentProfile picks the nested profile matching payment_type.
// A blank type reads the credit card branch.
func selectPaymentProfile(p *domain.ProviderSubscription) *domain.ProviderPaymentProfile {
	kind := strings.TrimSpace(domain.Value(p.PaymentType))
	switch {
	case kind == "" || strings.EqualFold(kind, paymentTypeCreditCard):
		return p.CreditCard
	case strings.EqualFold(kind, paymentTypeBankAccount):
		return p.BankAccount
	default:
		return nil
	}
}
