package domain

// The Provider* types mirror the Chargify wire format. Only declared keys
// survive decoding; anything else the provider sends is dropped.

type ProviderCustomer struct {
	ID           *Numeric `json:"id,omitempty"`
	Reference    *Text    `json:"reference,omitempty"`
	FirstName    *Text    `json:"first_name,omitempty"`
	LastName     *Text    `json:"last_name,omitempty"`
	Email        *Text    `json:"email,omitempty"`
	Organization *Text    `json:"organization,omitempty"`
	VATNumber    *Text    `json:"vat_number,omitempty"`
	Address      *Text    `json:"address,omitempty"`
	Address2     *Text    `json:"address_2,omitempty"`
	City         *Text    `json:"city,omitempty"`
	State        *Text    `json:"state,omitempty"`
	Zip          *Text    `json:"zip,omitempty"`
	Country      *Text    `json:"country,omitempty"`
	Phone        *Text    `json:"phone,omitempty"`
	CreatedAt    *Text    `json:"created_at,omitempty"`
	UpdatedAt    *Text    `json:"updated_at,omitempty"`
	Removed      *bool    `json:"removed,omitempty"`
}

func (c ProviderCustomer) IsEmpty() bool { return c == ProviderCustomer{} }

type ProviderPaymentProfile struct {
	ID                    *Numeric `json:"id,omitempty"`
	CustomerID            *Numeric `json:"customer_id,omitempty"`
	PaymentType           *Text    `json:"payment_type,omitempty"`
	FirstName             *Text    `json:"first_name,omitempty"`
	LastName              *Text    `json:"last_name,omitempty"`
	FullNumber            *Text    `json:"full_number,omitempty"`
	MaskedCardNumber      *Text    `json:"masked_card_number,omitempty"`
	CardType              *Text    `json:"card_type,omitempty"`
	ExpirationMonth       *Text    `json:"expiration_month,omitempty"`
	ExpirationYear        *Text    `json:"expiration_year,omitempty"`
	CVV                   *Text    `json:"cvv,omitempty"`
	BillingAddress        *Text    `json:"billing_address,omitempty"`
	BillingAddress2       *Text    `json:"billing_address_2,omitempty"`
	BillingCity           *Text    `json:"billing_city,omitempty"`
	BillingState          *Text    `json:"billing_state,omitempty"`
	BillingZip            *Text    `json:"billing_zip,omitempty"`
	BillingCountry        *Text    `json:"billing_country,omitempty"`
	BankName              *Text    `json:"bank_name,omitempty"`
	BankRoutingNumber     *Text    `json:"bank_routing_number,omitempty"`
	BankAccountNumber     *Text    `json:"bank_account_number,omitempty"`
	BankAccountType       *Text    `json:"bank_account_type,omitempty"`
	BankAccountHolderType *Text    `json:"bank_account_holder_type,omitempty"`
	Removed               *bool    `json:"removed,omitempty"`
}

func (p ProviderPaymentProfile) IsEmpty() bool { return p == ProviderPaymentProfile{} }

type ProviderProductFamily struct {
	Handle      *Text `json:"handle,omitempty"`
	Name        *Text `json:"name,omitempty"`
	Description *Text `json:"description,omitempty"`
}

func (f ProviderProductFamily) IsEmpty() bool { return f == ProviderProductFamily{} }

type ProviderProduct struct {
	ID                     *Numeric               `json:"id,omitempty"`
	Handle                 *Text                  `json:"handle,omitempty"`
	Name                   *Text                  `json:"name,omitempty"`
	Description            *Text                  `json:"description,omitempty"`
	ProductFamily          *ProviderProductFamily `json:"product_family,omitempty"`
	IntervalUnit           *Text                  `json:"interval_unit,omitempty"`
	Interval               *Numeric               `json:"interval,omitempty"`
	InitialChargeInCents   *Numeric               `json:"initial_charge_in_cents,omitempty"`
	TrialPriceInCents      *Numeric               `json:"trial_price_in_cents,omitempty"`
	TrialInterval          *Numeric               `json:"trial_interval,omitempty"`
	TrialIntervalUnit      *Text                  `json:"trial_interval_unit,omitempty"`
	ExpirationInterval     *Numeric               `json:"expiration_interval,omitempty"`
	ExpirationIntervalUnit *Text                  `json:"expiration_interval_unit,omitempty"`
	VersionNumber          *Numeric               `json:"version_number,omitempty"`
	CreatedAt              *Text                  `json:"created_at,omitempty"`
	UpdatedAt              *Text                  `json:"updated_at,omitempty"`
	ArchivedAt             *Text                  `json:"archived_at,omitempty"`
	Removed                *bool                  `json:"removed,omitempty"`
}

func (p ProviderProduct) IsEmpty() bool { return p == ProviderProduct{} }

type ProviderSubscription struct {
	ID                      *Numeric                `json:"id,omitempty"`
	State                   *Text                   `json:"state,omitempty"`
	PreviousState           *Text                   `json:"previous_state,omitempty"`
	CustomerID              *Numeric                `json:"customer_id,omitempty"`
	Customer                *ProviderCustomer       `json:"customer,omitempty"`
	PaymentProfileID        *Numeric                `json:"payment_profile_id,omitempty"`
	PaymentType             *Text                   `json:"payment_type,omitempty"`
	CreditCard              *ProviderPaymentProfile `json:"credit_card,omitempty"`
	BankAccount             *ProviderPaymentProfile `json:"bank_account,omitempty"`
	ProductHandle           *Text                   `json:"product_handle,omitempty"`
	Product                 *ProviderProduct        `json:"product,omitempty"`
	CreatedAt               *Text                   `json:"created_at,omitempty"`
	UpdatedAt               *Text                   `json:"updated_at,omitempty"`
	ArchivedAt              *Text                   `json:"archived_at,omitempty"`
	CurrentPeriodStartedAt  *Text                   `json:"current_period_started_at,omitempty"`
	CurrentPeriodEndsAt     *Text                   `json:"current_period_ends_at,omitempty"`
	NextAssessmentAt        *Text                   `json:"next_assessment_at,omitempty"`
	DelayedCancelAt         *Text                   `json:"delayed_cancel_at,omitempty"`
	ExpiresAt               *Text                   `json:"expires_at,omitempty"`
	CanceledAt              *Text                   `json:"canceled_at,omitempty"`
	CancellationMessage     *Text                   `json:"cancellation_message,omitempty"`
	CancelAtEndOfPeriod     *Text                   `json:"cancel_at_end_of_period,omitempty"`
	BalanceInCents          *Numeric                `json:"balance_in_cents,omitempty"`
	CouponCode              *Text                   `json:"coupon_code,omitempty"`
	PaymentCollectionMethod *Text                   `json:"payment_collection_method,omitempty"`
	ProductPriceInCents     *Numeric                `json:"product_price_in_cents,omitempty"`
	ProductVersionNumber    *Numeric                `json:"product_version_number,omitempty"`
	SignupPaymentID         *Numeric                `json:"signup_payment_id,omitempty"`
	SignupRevenue           *Text                   `json:"signup_revenue,omitempty"`
	TotalRevenueInCents     *Numeric                `json:"total_revenue_in_cents,omitempty"`
	TrialStartedAt          *Text                   `json:"trial_started_at,omitempty"`
	TrialEndedAt            *Text                   `json:"trial_ended_at,omitempty"`
	Canceled                *bool                   `json:"canceled,omitempty"`
}

func (s ProviderSubscription) IsEmpty() bool { return s == ProviderSubscription{} }
