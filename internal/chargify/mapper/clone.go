package mapper

import "github.com/smallbiznis/chargify-bridge/internal/chargify/domain"

// clone copies an optional value so source and destination never share
// storage. Absent stays absent.
func clone[T any](value *T) *T {
	if value == nil {
		return nil
	}
	c := *value
	return &c
}

// flag copies a provider boolean, defaulting absent values to false.
func flag(value *bool) *bool {
	if value == nil {
		return domain.BoolOf(false)
	}
	return domain.BoolOf(*value)
}

// coalesce keeps primary unless it is blank and alias is set.
func coalesce(primary, alias *domain.Text) *domain.Text {
	if !domain.IsBlank(primary) || alias == nil {
		return clone(primary)
	}
	return clone(alias)
}
