package observability

import (
	"testing"

	"github.com/smallbiznis/chargify-bridge/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	dev := LoadConfig(config.Config{
		Environment: "development",
		Telemetry:   config.TelemetryConfig{Endpoint: "collector:4317"},
	})
	assert.Equal(t, "chargify-bridge", dev.ServiceName)
	assert.False(t, dev.OtelEnabled)
	assert.True(t, dev.Debug())
	assert.Equal(t, "collector:4317", dev.OtelExporterEndpoint)
	assert.Equal(t, "grpc", dev.OtelExporterProtocol)
	assert.Equal(t, "info", dev.LogLevel)
	assert.Equal(t, "json", dev.LogFormat)

	prod := LoadConfig(config.Config{AppName: "bridge", Environment: "production"})
	assert.Equal(t, "bridge", prod.ServiceName)
	assert.True(t, prod.OtelEnabled)
	assert.False(t, prod.Debug())
}

func TestLoadConfigExplicitTelemetry(t *testing.T) {
	disabled := false
	cfg := LoadConfig(config.Config{
		Environment: "production",
		Telemetry: config.TelemetryConfig{
			LogLevel:      "DEBUG",
			LogFormat:     "console",
			Enabled:       &disabled,
			Protocol:      "HTTP",
			SamplingRatio: 0.5,
		},
	})
	assert.False(t, cfg.OtelEnabled)
	assert.Equal(t, "http", cfg.OtelExporterProtocol)
	assert.Equal(t, 0.5, cfg.OtelSamplingRatio)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.Debug())
}
