package config

import (
	"testing"
	"time"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHARGIFY_API_KEY", "key")
	t.Setenv("CHARGIFY_SUBDOMAIN", "acme")
	t.Setenv("CHARGIFY_SITE_SHARED_KEY", "secret")
	t.Setenv("CHARGIFY_TIMEOUT", "5s")
	t.Setenv("WEBHOOK_SINK", "REDIS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "chargify-bridge", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "key", cfg.Chargify.APIKey)
	assert.Equal(t, "secret", cfg.Chargify.SiteSharedKey)
	assert.Equal(t, 5*time.Second, cfg.Chargify.Timeout)
	assert.Equal(t, "https://acme.chargify.com", cfg.Chargify.SiteURL())
	assert.Equal(t, "/webhooks", cfg.Webhook.Path)
	assert.Equal(t, "redis", cfg.Webhook.Sink)
	assert.Equal(t, "chargify:webhooks", cfg.Webhook.Stream)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, "grpc", cfg.Telemetry.Protocol)
	assert.Equal(t, 0.1, cfg.Telemetry.SamplingRatio)
}

func TestLoadTelemetryFromEnv(t *testing.T) {
	t.Setenv("CHARGIFY_API_KEY", "key")
	t.Setenv("CHARGIFY_SUBDOMAIN", "acme")
	t.Setenv("DEPLOYMENT_ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "http/protobuf")
	t.Setenv("OTEL_SAMPLING_RATIO", "0.5")
	t.Setenv("OTEL_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.Telemetry.LogLevel)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "http/protobuf", cfg.Telemetry.Protocol)
	assert.Equal(t, 0.5, cfg.Telemetry.SamplingRatio)
	require.NotNil(t, cfg.Telemetry.Enabled)
	assert.False(t, *cfg.Telemetry.Enabled)
}

func TestLoadLeavesExportUnsetWithoutEnv(t *testing.T) {
	t.Setenv("CHARGIFY_API_KEY", "key")
	t.Setenv("CHARGIFY_SUBDOMAIN", "acme")
	t.Setenv("OTEL_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Telemetry.Enabled)
}

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("CHARGIFY_API_KEY", "")
	t.Setenv("CHARGIFY_SUBDOMAIN", "acme")

	_, err := Load()
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, EmptyAPIKeyMessage, cfgErr.Message)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			HTTPAddr: ":8080",
			Chargify: ChargifyConfig{APIKey: "key", Subdomain: "acme", Domain: "chargify.com"},
			Webhook:  WebhookConfig{Path: "/webhooks", Sink: "log"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "api key", mutate: func(c *Config) { c.Chargify.APIKey = "" }, want: EmptyAPIKeyMessage},
		{name: "subdomain", mutate: func(c *Config) { c.Chargify.Subdomain = "" }, want: EmptySubdomainMessage},
		{name: "sink", mutate: func(c *Config) { c.Webhook.Sink = "kafka" }, want: "invalid Config.Webhook.Sink: must satisfy oneof=log redis"},
		{name: "sampling ratio", mutate: func(c *Config) { c.Telemetry.SamplingRatio = 2 }, want: "invalid Config.Telemetry.SamplingRatio: must satisfy lte=1"},
		{name: "path", mutate: func(c *Config) { c.Webhook.Path = "hooks" }, want: "invalid Config.Webhook.Path: must satisfy startswith=/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *domain.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.want, cfgErr.Message)
		})
	}
}

func TestSiteURLOverride(t *testing.T) {
	cfg := ChargifyConfig{Subdomain: "acme", Domain: "chargify.com", BaseURL: "http://127.0.0.1:9999"}
	assert.Equal(t, "http://127.0.0.1:9999", cfg.SiteURL())
	assert.Empty(t, ChargifyConfig{Domain: "chargify.com"}.SiteURL())
}
