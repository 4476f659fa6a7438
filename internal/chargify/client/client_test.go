package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/smallbiznis/chargify-bridge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(config.ChargifyConfig{APIKey: "key", Subdomain: "acme", Domain: "chargify.com", BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(config.ChargifyConfig{Subdomain: "acme", Domain: "chargify.com"})
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, config.EmptyAPIKeyMessage, cfgErr.Message)

	_, err = New(config.ChargifyConfig{APIKey: "key", Domain: "chargify.com"})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, config.EmptySubdomainMessage, cfgErr.Message)
}

func TestDoSendsAuthenticatedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "x", pass)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"customer":{"email":"a@x.io"}}`, string(raw))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"customer":{"id":77}}`))
	})

	doc, err := c.Do(context.Background(), domain.Request{
		Method: http.MethodPost,
		Path:   "customers.json",
		Body:   map[string]any{"customer": map[string]string{"email": "a@x.io"}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":77}`, string(doc["customer"]))
}

func TestDoEncodesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/lookup.json", r.URL.Path)
		assert.Equal(t, "c 1", r.URL.Query().Get("reference"))
		assert.Zero(t, r.ContentLength)
		_, _ = w.Write([]byte(`{"customer":{"id":77}}`))
	})

	_, err := c.Do(context.Background(), domain.Request{
		Method: http.MethodGet,
		Path:   "customers/lookup.json",
		Query:  url.Values{"reference": []string{"c 1"}},
	})
	require.NoError(t, err)
}

func TestDoReturnsHTTPError(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.Do(context.Background(), domain.Request{Method: http.MethodGet, Path: "customers/9.json"})
		var httpErr *domain.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "HTTP 404 Not Found")
	})

	t.Run("validation errors", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": []string{"Email: cannot be blank."}})
		})

		_, err := c.Do(context.Background(), domain.Request{Method: http.MethodPost, Path: "customers.json"})
		var httpErr *domain.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.True(t, httpErr.Body.Has("errors"))
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDoEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	doc, err := c.Do(context.Background(), domain.Request{Method: http.MethodDelete, Path: "customers/42.json"})
	require.NoError(t, err)
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestDoNonObjectBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "array", body: `[{"customer":{"id":1}}]`},
		{name: "null", body: `null`},
		{name: "string", body: `"ok"`},
		{name: "malformed", body: `{"customer":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			doc, err := c.Do(context.Background(), domain.Request{Method: http.MethodGet, Path: "customers.json"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "decode response body")
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, doc)
			assert.Empty(t, doc)
		})
	}
}
