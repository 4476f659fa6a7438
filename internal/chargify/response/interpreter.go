package response

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

const (
	errorsKey          = "errors"
	defaultClientError = "Client error"
)

// Unwrap extracts the entity for kind from a provider reply. A transport
// 404 wins over any body. A missing envelope with an errors list becomes an
// APIError, and a missing envelope without one a NotFoundError.
func Unwrap(kind domain.Kind, doc domain.Document, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, Classify(kind, err)
	}
	if doc.Has(kind.Envelope()) {
		return doc[kind.Envelope()], nil
	}
	if doc.Has(errorsKey) {
		return nil, apiError(doc)
	}
	return nil, &domain.NotFoundError{Kind: kind}
}

// Classify maps a transport failure onto the error taxonomy. Failures that
// are neither a 404 nor an errors list pass through unchanged.
func Classify(kind domain.Kind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NotFoundError{Kind: kind}
	}
	var httpErr *domain.HTTPError
	if errors.As(err, &httpErr) && httpErr.Body.Has(errorsKey) {
		return apiError(httpErr.Body)
	}
	return err
}

// Decode unwraps and decodes the entity into T.
func Decode[T any](kind domain.Kind, doc domain.Document, err error) (T, error) {
	var out T
	raw, err := Unwrap(kind, doc, err)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", kind, err)
	}
	return out, nil
}

// Removal interprets the outcome of a delete or cancel. Not found means
// there was nothing to remove and is not an error.
func Removal(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func apiError(doc domain.Document) error {
	message := defaultClientError
	var list []json.RawMessage
	if err := json.Unmarshal(doc[errorsKey], &list); err == nil && len(list) > 0 {
		var first string
		if err := json.Unmarshal(list[0], &first); err == nil && first != "" {
			message = first
		} else if err != nil {
			message = string(list[0])
		}
	}
	payload, _ := json.Marshal(doc)
	return &domain.APIError{Message: message, Payload: payload}
}
