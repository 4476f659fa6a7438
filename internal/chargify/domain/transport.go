package domain

import (
	"context"
	"encoding/json"
	"net/url"
)

// Request is a single call against the provider REST surface. Path is
// relative to the site base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Document is a parsed JSON object returned by the provider.
type Document map[string]json.RawMessage

func (d Document) Has(key string) bool {
	if d == nil {
		return false
	}
	raw, ok := d[key]
	return ok && len(raw) > 0 && string(raw) != "null"
}

//go:generate mockgen -source=transport.go -destination=./mocks/mock_transport.go -package=mocks

// Transport performs provider requests. Implementations return *HTTPError
// for non-2xx responses and plain errors for network or decoding failures.
type Transport interface {
	Do(ctx context.Context, req Request) (Document, error)
}
