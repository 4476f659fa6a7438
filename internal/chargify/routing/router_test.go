package routing

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutePrecedence(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name string
		op   domain.Operation
		kind domain.Kind
		addr Address
		want Route
	}{
		{
			name: "provider id wins over reference",
			op:   domain.OpRead,
			kind: domain.KindCustomer,
			addr: Address{ProviderID: 77, Reference: "c1"},
			want: Route{Method: http.MethodGet, Path: "customers/77.json"},
		},
		{
			name: "reference lookup",
			op:   domain.OpRead,
			kind: domain.KindCustomer,
			addr: Address{Reference: "c1"},
			want: Route{Method: http.MethodGet, Path: "customers/lookup.json", Query: url.Values{"reference": {"c1"}}},
		},
		{
			name: "create",
			op:   domain.OpCreate,
			kind: domain.KindPaymentProfile,
			want: Route{Method: http.MethodPost, Path: "payment_profiles.json"},
		},
		{
			name: "zero id is not addressable",
			op:   domain.OpUpdate,
			kind: domain.KindSubscription,
			addr: Address{ProviderID: 0},
			want: Route{Method: http.MethodPut, Path: "subscriptions.json"},
		},
		{
			name: "delete",
			op:   domain.OpDelete,
			kind: domain.KindSubscription,
			addr: Address{ProviderID: 3},
			want: Route{Method: http.MethodDelete, Path: "subscriptions/3.json"},
		},
		{
			name: "stats",
			op:   domain.OpRead,
			kind: domain.KindStats,
			want: Route{Method: http.MethodGet, Path: "stats.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.Route(tt.op, tt.kind, tt.addr))
		})
	}
}

func TestEnvelopeTokenIsFresh(t *testing.T) {
	router := NewRouter()

	first := router.Envelope(domain.KindCustomer, map[string]any{})
	second := router.Envelope(domain.KindCustomer, map[string]any{})

	firstToken, ok := first[uniquenessTokenKey].(string)
	require.True(t, ok)
	_, err := uuid.Parse(firstToken)
	require.NoError(t, err)
	assert.NotEqual(t, firstToken, second[uniquenessTokenKey])
}

func TestRequestBody(t *testing.T) {
	router := &Router{token: func() string { return "tok" }}
	customer := mapper.CustomerToProvider(&domain.Customer{
		ID:        domain.TextOf("c1"),
		FirstName: domain.TextOf("A"),
		LastName:  domain.TextOf("B"),
		Email:     domain.TextOf("a@b.co"),
	})

	req := router.Request(domain.OpCreate, domain.KindCustomer, Address{}, customer)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "customers.json", req.Path)

	body, err := json.Marshal(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"customer": {"reference":"c1","first_name":"A","last_name":"B","email":"a@b.co"},
		"uniqueness_token": "tok"
	}`, string(body))

	read := router.Request(domain.OpRead, domain.KindCustomer, Address{ProviderID: 1}, nil)
	assert.Nil(t, read.Body)
}
