package routing

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

const uniquenessTokenKey = "uniqueness_token"

// Address holds what is known about where a resource lives. A ProviderID
// below 1 counts as unknown.
type Address struct {
	ProviderID int64
	Reference  string
}

type Route struct {
	Method string
	Path   string
	Query  url.Values
}

// Router builds provider paths and write envelopes.
type Router struct {
	token func() string
}

func NewRouter() *Router {
	return &Router{token: uuid.NewString}
}

// Route resolves the path for op on kind. A provider id takes precedence
// over a reference; with neither the bare collection is addressed.
func (r *Router) Route(op domain.Operation, kind domain.Kind, addr Address) Route {
	collection := kind.Collection()
	route := Route{Method: op.Method()}
	switch {
	case addr.ProviderID >= 1:
		route.Path = fmt.Sprintf("%s/%d.json", collection, addr.ProviderID)
	case addr.Reference != "":
		route.Path = collection + "/lookup.json"
		route.Query = url.Values{"reference": []string{addr.Reference}}
	default:
		route.Path = collection + ".json"
	}
	return route
}

// Envelope wraps a write body under the kind's key with a fresh
// uniqueness token.
func (r *Router) Envelope(kind domain.Kind, body any) map[string]any {
	return map[string]any{
		kind.Envelope():    body,
		uniquenessTokenKey: r.token(),
	}
}

// Request assembles a complete transport request. A nil body produces a
// body-less request.
func (r *Router) Request(op domain.Operation, kind domain.Kind, addr Address, body any) domain.Request {
	route := r.Route(op, kind, addr)
	req := domain.Request{
		Method: route.Method,
		Path:   route.Path,
		Query:  route.Query,
	}
	if body != nil {
		req.Body = r.Envelope(kind, body)
	}
	return req
}
