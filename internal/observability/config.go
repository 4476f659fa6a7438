package observability

import (
	"strings"

	"github.com/smallbiznis/chargify-bridge/internal/config"
)

// Config holds observability settings resolved from application config.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel  string
	LogFormat string

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelExporterProtocol string
	OtelSamplingRatio    float64
}

// LoadConfig derives observability settings from application config.
// Export defaults to off in development environments.
func LoadConfig(cfg config.Config) Config {
	serviceName := strings.TrimSpace(cfg.AppName)
	if serviceName == "" {
		serviceName = "chargify-bridge"
	}
	t := cfg.Telemetry

	enabled := !isDevEnv(cfg.Environment)
	if t.Enabled != nil {
		enabled = *t.Enabled
	}

	return Config{
		ServiceName:          serviceName,
		Environment:          strings.TrimSpace(cfg.Environment),
		Version:              strings.TrimSpace(cfg.AppVersion),
		LogLevel:             orDefault(strings.ToLower(t.LogLevel), "info"),
		LogFormat:            orDefault(strings.ToLower(t.LogFormat), "json"),
		OtelEnabled:          enabled,
		OtelExporterEndpoint: strings.TrimSpace(t.Endpoint),
		OtelExporterProtocol: orDefault(strings.ToLower(t.Protocol), "grpc"),
		OtelSamplingRatio:    t.SamplingRatio,
	}
}

func (c Config) Debug() bool {
	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	if level == "debug" {
		return true
	}
	return isDevEnv(c.Environment)
}

func isDevEnv(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	switch env {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

func orDefault(value, def string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return def
}
