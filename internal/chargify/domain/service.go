package domain

import "context"

// Service is the set of endpoint functions exposed to the platform. Every
// call is a single synchronous round trip to the provider.
type Service interface {
	GetStats(ctx context.Context) (Document, error)

	CreateCustomer(ctx context.Context, in *Customer) (Customer, error)
	UpdateCustomer(ctx context.Context, in *Customer) (Customer, error)
	FindCustomerByChargifyID(ctx context.Context, in *Customer) (Customer, error)
	FindCustomerByID(ctx context.Context, in *Customer) (Customer, error)
	RemoveCustomer(ctx context.Context, in *Customer) (CustomerRemoval, error)

	CreatePaymentProfile(ctx context.Context, in *PaymentProfile) (PaymentProfile, error)
	UpdatePaymentProfile(ctx context.Context, in *PaymentProfile) (PaymentProfile, error)

	CreateSubscription(ctx context.Context, in *Subscription) (Subscription, error)
	UpdateSubscription(ctx context.Context, in *Subscription) (Subscription, error)
	CancelSubscription(ctx context.Context, in *Subscription) (SubscriptionCancellation, error)

	CalculateSelfServiceURL(ctx context.Context, in *SelfServiceRequest) (SelfServiceURL, error)
}
