package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first invalid setting as a ConfigurationError.
// Missing credentials keep their historical messages.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &domain.ConfigurationError{Message: err.Error()}
	}
	return &domain.ConfigurationError{Message: message(fieldErrs[0])}
}

func message(fe validator.FieldError) string {
	switch fe.StructNamespace() {
	case "Config.Chargify.APIKey":
		return EmptyAPIKeyMessage
	case "Config.Chargify.Subdomain":
		return EmptySubdomainMessage
	}
	if fe.Param() != "" {
		return fmt.Sprintf("invalid %s: must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("invalid %s: %s", fe.Namespace(), fe.Tag())
}
