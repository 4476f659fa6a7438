package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	obscontext "github.com/smallbiznis/chargify-bridge/internal/observability/context"
)

// function adapts one service method to a raw JSON request body.
type function func(ctx context.Context, svc domain.Service, body []byte) (any, error)

var functions = map[string]function{
	"getStats": func(ctx context.Context, svc domain.Service, _ []byte) (any, error) {
		return svc.GetStats(ctx)
	},
	"createCustomer":           bind(domain.Service.CreateCustomer),
	"updateCustomer":           bind(domain.Service.UpdateCustomer),
	"findCustomerByChargifyId": bind(domain.Service.FindCustomerByChargifyID),
	"findCustomerById":         bind(domain.Service.FindCustomerByID),
	"removeCustomer":           bind(domain.Service.RemoveCustomer),
	"createPaymentProfile":     bind(domain.Service.CreatePaymentProfile),
	"updatePaymentProfile":     bind(domain.Service.UpdatePaymentProfile),
	"createSubscription":       bind(domain.Service.CreateSubscription),
	"updateSubscription":       bind(domain.Service.UpdateSubscription),
	"cancelSubscription":       bind(domain.Service.CancelSubscription),
	"calculateSelfServiceUrl":  bind(domain.Service.CalculateSelfServiceURL),
}

func bind[In, Out any](call func(domain.Service, context.Context, *In) (Out, error)) function {
	return func(ctx context.Context, svc domain.Service, body []byte) (any, error) {
		in, err := decodeInput[In](body)
		if err != nil {
			return nil, err
		}
		return call(svc, ctx, in)
	}
}

// decodeInput reads an optional JSON object. An empty or null body yields a
// nil input, which the service reports as an empty payload.
func decodeInput[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	in := new(T)
	if err := json.Unmarshal(trimmed, in); err != nil {
		return nil, ErrInvalidBody
	}
	return in, nil
}

// HandleFunction runs the endpoint function named in the path.
func (s *Server) HandleFunction(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	fn, ok := functions[name]
	if !ok {
		AbortWithError(c, ErrUnknownFunction)
		return
	}

	ctx := obscontext.WithFunction(c.Request.Context(), name)
	c.Request = c.Request.WithContext(ctx)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, ErrInvalidBody)
		return
	}

	out, err := fn(ctx, s.chargify, body)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
