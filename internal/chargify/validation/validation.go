package validation

import (
	"strings"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

// Payload is any provider-shaped entity that can report emptiness.
type Payload interface {
	IsEmpty() bool
}

// Rule names a required field and reads it from the payload.
type Rule[T any] struct {
	Field string
	Value func(T) *domain.Text
}

// CheckNonEmpty fails when the payload has no fields set.
func CheckNonEmpty(label string, payload Payload) error {
	if payload == nil || payload.IsEmpty() {
		return domain.Argumentf("%s is empty", label)
	}
	return nil
}

// CheckProviderID validates the provider-assigned id and returns it parsed.
func CheckProviderID(id *domain.Numeric) (int64, error) {
	return checkID("chargify", id)
}

// CheckCustomerID validates the owning customer id of a payment profile or
// subscription.
func CheckCustomerID(id *domain.Numeric) (int64, error) {
	return checkID("customer", id)
}

// CheckPaymentProfileID validates the payment profile id of a subscription.
func CheckPaymentProfileID(id *domain.Numeric) (int64, error) {
	return checkID("payment profile", id)
}

// checkID accepts any non-negative base-10 integer. Zero is a valid id.
func checkID(label string, id *domain.Numeric) (int64, error) {
	if domain.IsBlank(id) {
		return 0, domain.Argumentf("Invalid %s id [%s]", label, domain.Literal(id))
	}
	value, ok := id.Int64()
	if !ok || value < 0 {
		return 0, domain.Argumentf("Invalid %s id [%s]", label, domain.Literal(id))
	}
	return value, nil
}

// CheckExternalReference validates the caller's own identifier used for
// lookups.
func CheckExternalReference(reference *domain.Text) (string, error) {
	if domain.IsBlank(reference) {
		return "", domain.Argumentf("Invalid id [%s]", domain.Literal(reference))
	}
	return string(*reference), nil
}

// CheckRequiredFields returns the names of blank required fields in rule
// order.
func CheckRequiredFields[T any](payload T, rules []Rule[T]) []string {
	var missing []string
	for _, rule := range rules {
		if domain.IsBlank(rule.Value(payload)) {
			missing = append(missing, rule.Field)
		}
	}
	return missing
}

// RaiseIfAny turns a violation list into a single argument error.
func RaiseIfAny(violations []string) error {
	switch len(violations) {
	case 0:
		return nil
	case 1:
		return domain.Argumentf("Invalid empty field [%s]", violations[0])
	default:
		return domain.Argumentf("Invalid empty fields [%s]", strings.Join(violations, ", "))
	}
}
