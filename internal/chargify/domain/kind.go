package domain

import "net/http"

// Kind names a provider resource. Its string value doubles as the write
// envelope key.
type Kind string

const (
	KindCustomer       Kind = "customer"
	KindPaymentProfile Kind = "payment_profile"
	KindSubscription   Kind = "subscription"
	KindStats          Kind = "stats"
)

// Collection returns the REST collection the kind lives under.
func (k Kind) Collection() string {
	switch k {
	case KindCustomer:
		return "customers"
	case KindPaymentProfile:
		return "payment_profiles"
	case KindSubscription:
		return "subscriptions"
	default:
		return string(k)
	}
}

// Envelope returns the single key wrapping the entity in bodies.
func (k Kind) Envelope() string { return string(k) }

// Label is the human name used in validation messages.
func (k Kind) Label() string {
	switch k {
	case KindCustomer:
		return "Customer"
	case KindPaymentProfile:
		return "Payment profile"
	case KindSubscription:
		return "Subscription"
	default:
		return string(k)
	}
}

type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Method maps the operation onto its HTTP verb.
func (o Operation) Method() string {
	switch o {
	case OpCreate:
		return http.MethodPost
	case OpUpdate:
		return http.MethodPut
	case OpDelete:
		return http.MethodDelete
	default:
		return http.MethodGet
	}
}
