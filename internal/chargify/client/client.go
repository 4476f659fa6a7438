package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/smallbiznis/chargify-bridge/internal/config"
	obstracing "github.com/smallbiznis/chargify-bridge/internal/observability/tracing"
)

// basicAuthPassword is the fixed password the provider expects next to the
// API key.
const basicAuthPassword = "x"

// Client is the REST transport against one provider site.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ domain.Transport = (*Client)(nil)

// New builds a client for cfg. The returned client is safe for concurrent
// use.
func New(cfg config.ChargifyConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &domain.ConfigurationError{Message: config.EmptyAPIKeyMessage}
	}
	baseURL := strings.TrimRight(cfg.SiteURL(), "/")
	if baseURL == "" {
		return nil, &domain.ConfigurationError{Message: config.EmptySubdomainMessage}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    obstracing.WrapHTTPClient(&http.Client{Timeout: timeout}),
	}, nil
}

// Do sends req and decodes the JSON object in the reply.
func (c *Client) Do(ctx context.Context, req domain.Request) (domain.Document, error) {
	target := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.apiKey, basicAuthPassword)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		httpErr := &domain.HTTPError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, &httpErr.Body)
		return nil, httpErr
	}

	return decodeDocument(raw)
}

// decodeDocument reads a reply body. Empty bodies and JSON values other
// than an object carry no entity envelope and yield an empty Document.
func decodeDocument(raw []byte) (domain.Document, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return domain.Document{}, nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode response body: invalid JSON")
	}
	if raw[0] != '{' {
		return domain.Document{}, nil
	}
	doc := domain.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	return doc, nil
}
