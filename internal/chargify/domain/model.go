package domain

// Customer is the canonical, platform-facing customer.
type Customer struct {
	ID               *Text    `json:"id,omitempty"`
	ChargifyID       *Numeric `json:"chargifyId,omitempty"`
	FirstName        *Text    `json:"firstName,omitempty"`
	LastName         *Text    `json:"lastName,omitempty"`
	Email            *Text    `json:"email,omitempty"`
	Organization     *Text    `json:"organization,omitempty"`
	VAT              *Text    `json:"vat,omitempty"`
	ShippingAddress1 *Text    `json:"shippingAddress1,omitempty"`
	ShippingAddress2 *Text    `json:"shippingAddress2,omitempty"`
	ShippingCity     *Text    `json:"shippingCity,omitempty"`
	ShippingState    *Text    `json:"shippingState,omitempty"`
	ShippingZipCode  *Text    `json:"shippingZipCode,omitempty"`
	ShippingCountry  *Text    `json:"shippingCountry,omitempty"`
	Phone            *Text    `json:"phone,omitempty"`
	CreatedAt        *Text    `json:"createdAt,omitempty"`
	UpdatedAt        *Text    `json:"updatedAt,omitempty"`
	Removed          *bool    `json:"removed,omitempty"`
}

func (c Customer) IsEmpty() bool { return c == Customer{} }

// PaymentProfile is the canonical payment profile. FirstNameOnCard,
// LastNameOnCard and Code are legacy aliases of FirstName, LastName and CVV.
type PaymentProfile struct {
	ID                       *Text    `json:"id,omitempty"`
	ChargifyID               *Numeric `json:"chargifyId,omitempty"`
	CustomerID               *Numeric `json:"customerId,omitempty"`
	PaymentType              *Text    `json:"paymentType,omitempty"`
	FirstName                *Text    `json:"firstName,omitempty"`
	LastName                 *Text    `json:"lastName,omitempty"`
	CreditCardNumber         *Text    `json:"creditCardNumber,omitempty"`
	OriginalCreditCardNumber *Text    `json:"originalCreditCardNumber,omitempty"`
	CreditCardType           *Text    `json:"creditCardType,omitempty"`
	ExpirationMonth          *Text    `json:"expirationMonth,omitempty"`
	ExpirationYear           *Text    `json:"expirationYear,omitempty"`
	CVV                      *Text    `json:"cvv,omitempty"`
	BillingAddress1          *Text    `json:"billingAddress1,omitempty"`
	BillingAddress2          *Text    `json:"billingAddress2,omitempty"`
	BillingCity              *Text    `json:"billingCity,omitempty"`
	BillingState             *Text    `json:"billingState,omitempty"`
	BillingZipCode           *Text    `json:"billingZipCode,omitempty"`
	BillingCountry           *Text    `json:"billingCountry,omitempty"`
	BankName                 *Text    `json:"bankName,omitempty"`
	BankRoutingNumber        *Text    `json:"bankRoutingNumber,omitempty"`
	BankAccountNumber        *Text    `json:"bankAccountNumber,omitempty"`
	BankAccountType          *Text    `json:"bankAccountType,omitempty"`
	BankAccountHolderType    *Text    `json:"bankAccountHolderType,omitempty"`
	Removed                  *bool    `json:"removed,omitempty"`

	FirstNameOnCard *Text `json:"firstNameOnCard,omitempty"`
	LastNameOnCard  *Text `json:"lastNameOnCard,omitempty"`
	Code            *Text `json:"code,omitempty"`
}

func (p PaymentProfile) IsEmpty() bool { return p == PaymentProfile{} }

// ProductFamily groups products on the provider side.
type ProductFamily struct {
	Handle      *Text `json:"handle,omitempty"`
	Name        *Text `json:"name,omitempty"`
	Description *Text `json:"description,omitempty"`
}

// Product is read-only and only appears nested in a subscription.
type Product struct {
	ChargifyID             *Numeric       `json:"chargifyId,omitempty"`
	Handle                 *Text          `json:"handle,omitempty"`
	Name                   *Text          `json:"name,omitempty"`
	Description            *Text          `json:"description,omitempty"`
	Family                 *ProductFamily `json:"family,omitempty"`
	IntervalUnit           *Text          `json:"intervalUnit,omitempty"`
	Interval               *Numeric       `json:"interval,omitempty"`
	InitialChargeInCents   *Numeric       `json:"initialChargeInCents,omitempty"`
	TrialPriceInCents      *Numeric       `json:"trialPriceInCents,omitempty"`
	TrialInterval          *Numeric       `json:"trialInterval,omitempty"`
	TrialIntervalUnit      *Text          `json:"trialIntervalUnit,omitempty"`
	ExpirationInterval     *Numeric       `json:"expirationInterval,omitempty"`
	ExpirationIntervalUnit *Text          `json:"expirationIntervalUnit,omitempty"`
	VersionNumber          *Numeric       `json:"versionNumber,omitempty"`
	CreatedAt              *Text          `json:"createdAt,omitempty"`
	UpdatedAt              *Text          `json:"updatedAt,omitempty"`
	ArchivedAt             *Text          `json:"archivedAt,omitempty"`
	Removed                *bool          `json:"removed,omitempty"`
}

func (p Product) IsEmpty() bool { return p == Product{} }

// Subscription is the canonical subscription. Customer, PaymentProfile and
// Product are only populated on reads, when the provider nests them.
type Subscription struct {
	ID                      *Text           `json:"id,omitempty"`
	ChargifyID              *Numeric        `json:"chargifyId,omitempty"`
	State                   *Text           `json:"state,omitempty"`
	PreviousState           *Text           `json:"previousState,omitempty"`
	CustomerID              *Numeric        `json:"customerId,omitempty"`
	Customer                *Customer       `json:"customer,omitempty"`
	PaymentProfileID        *Numeric        `json:"paymentProfileId,omitempty"`
	PaymentProfile          *PaymentProfile `json:"paymentProfile,omitempty"`
	ProductHandle           *Text           `json:"productHandle,omitempty"`
	Product                 *Product        `json:"product,omitempty"`
	CreatedAt               *Text           `json:"createdAt,omitempty"`
	UpdatedAt               *Text           `json:"updatedAt,omitempty"`
	ArchivedAt              *Text           `json:"archivedAt,omitempty"`
	CurrentPeriodStartedAt  *Text           `json:"currentPeriodStartedAt,omitempty"`
	CurrentPeriodEndsAt     *Text           `json:"currentPeriodEndsAt,omitempty"`
	NextAssessmentAt        *Text           `json:"nextAssessmentAt,omitempty"`
	DelayedCancelAt         *Text           `json:"delayedCancelAt,omitempty"`
	ExpiresAt               *Text           `json:"expiresAt,omitempty"`
	CanceledAt              *Text           `json:"canceledAt,omitempty"`
	CancellationMessage     *Text           `json:"cancellationMessage,omitempty"`
	CancelAtEndOfPeriod     *Text           `json:"cancelAtEndOfPeriod,omitempty"`
	BalanceInCents          *Numeric        `json:"balanceInCents,omitempty"`
	CouponCode              *Text           `json:"couponCode,omitempty"`
	PaymentCollectionMethod *Text           `json:"paymentCollectionMethod,omitempty"`
	ProductPriceInCents     *Numeric        `json:"productPriceInCents,omitempty"`
	ProductVersionNumber    *Numeric        `json:"productVersionNumber,omitempty"`
	SignupPaymentID         *Numeric        `json:"signupPaymentId,omitempty"`
	SignupRevenue           *Text           `json:"signupRevenue,omitempty"`
	TotalRevenueInCents     *Numeric        `json:"totalRevenueInCents,omitempty"`
	TrialStartedAt          *Text           `json:"trialStartedAt,omitempty"`
	TrialEndedAt            *Text           `json:"trialEndedAt,omitempty"`
	Canceled                *bool           `json:"canceled,omitempty"`
}

func (s Subscription) IsEmpty() bool { return s == Subscription{} }

// CustomerRemoval is the result of an idempotent customer delete.
type CustomerRemoval struct {
	ID      int64 `json:"id"`
	Removed bool  `json:"removed"`
}

// SubscriptionCancellation is the result of an idempotent subscription cancel.
type SubscriptionCancellation struct {
	ID       int64 `json:"id"`
	Canceled bool  `json:"canceled"`
}

// SelfServiceRequest identifies the payment profile owner of a self-service page.
type SelfServiceRequest struct {
	ChargifyID *Numeric `json:"chargifyId,omitempty"`
}

// SelfServiceURL wraps the hosted payment-update URL.
type SelfServiceURL struct {
	Body string `json:"body"`
}

func (r SelfServiceRequest) IsEmpty() bool { return r == SelfServiceRequest{} }
