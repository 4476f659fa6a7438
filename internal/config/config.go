package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EmptyAPIKeyMessage    = "Invalid empty apiKey."
	EmptySubdomainMessage = "Invalid empty subdomain."
)

// Config holds application configuration. It is built once at startup and
// never mutated afterwards.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	Telemetry TelemetryConfig
	Chargify  ChargifyConfig
	Webhook  WebhookConfig
	Redis    RedisConfig
}

// ChargifyConfig identifies the provider site and its credentials.
type ChargifyConfig struct {
	APIKey        string `validate:"required"`
	Subdomain     string `validate:"required"`
	SiteSharedKey string
	Domain        string `validate:"required"`
	// BaseURL overrides the site URL derived from subdomain and domain.
	BaseURL string `validate:"omitempty,url"`
	Timeout time.Duration
}

// SiteURL returns the root of the provider REST surface.
func (c ChargifyConfig) SiteURL() string {
	if base := strings.TrimSpace(c.BaseURL); base != "" {
		return base
	}
	subdomain := strings.TrimSpace(c.Subdomain)
	if subdomain == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.%s", subdomain, strings.TrimSpace(c.Domain))
}

// TelemetryConfig carries logging and OpenTelemetry export settings. The
// standard OTEL_* and LOG_* variables map onto these keys.
type TelemetryConfig struct {
	LogLevel  string `validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `validate:"omitempty,oneof=json console"`
	// Enabled is nil when export was not configured; the environment then
	// decides.
	Enabled       *bool
	Endpoint      string
	Protocol      string  `validate:"omitempty,oneof=grpc grpc/protobuf http http/protobuf"`
	SamplingRatio float64 `validate:"gte=0,lte=1"`
}

type WebhookConfig struct {
	Path   string `validate:"required,startswith=/"`
	Sink   string `validate:"oneof=log redis"`
	Stream string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"gte=0"`
}

// Load reads .env, then chargify.yml when present, then the environment.
// Environment variables win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("chargify")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/chargify-bridge")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("environment", "ENVIRONMENT", "DEPLOYMENT_ENV")
	_ = v.BindEnv("app.version", "APP_VERSION", "SERVICE_VERSION")
	_ = v.BindEnv("otel.exporter.otlp.protocol", "OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "OTEL_EXPORTER_OTLP_PROTOCOL")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.service", "chargify-bridge")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("environment", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("otel.exporter.otlp.endpoint", "localhost:4317")
	v.SetDefault("otel.exporter.otlp.protocol", "grpc")
	v.SetDefault("otel.sampling.ratio", 0.1)
	v.SetDefault("chargify.domain", "chargify.com")
	v.SetDefault("chargify.timeout", 30*time.Second)
	v.SetDefault("webhook.path", "/webhooks")
	v.SetDefault("webhook.sink", "log")
	v.SetDefault("webhook.stream", "chargify:webhooks")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
}

func fromViper(v *viper.Viper) Config {
	return Config{
		AppName:     strings.TrimSpace(v.GetString("app.service")),
		AppVersion:  strings.TrimSpace(v.GetString("app.version")),
		Environment: strings.TrimSpace(v.GetString("environment")),
		HTTPAddr:    strings.TrimSpace(v.GetString("http.addr")),
		Telemetry:   telemetryFromViper(v),
		Chargify: ChargifyConfig{
			APIKey:        strings.TrimSpace(v.GetString("chargify.api.key")),
			Subdomain:     strings.TrimSpace(v.GetString("chargify.subdomain")),
			SiteSharedKey: strings.TrimSpace(v.GetString("chargify.site.shared.key")),
			Domain:        strings.TrimSpace(v.GetString("chargify.domain")),
			BaseURL:       strings.TrimSpace(v.GetString("chargify.base.url")),
			Timeout:       v.GetDuration("chargify.timeout"),
		},
		Webhook: WebhookConfig{
			Path:   strings.TrimSpace(v.GetString("webhook.path")),
			Sink:   strings.ToLower(strings.TrimSpace(v.GetString("webhook.sink"))),
			Stream: strings.TrimSpace(v.GetString("webhook.stream")),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(v.GetString("redis.addr")),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}
}

func telemetryFromViper(v *viper.Viper) TelemetryConfig {
	t := TelemetryConfig{
		LogLevel:      strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		LogFormat:     strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
		Endpoint:      strings.TrimSpace(v.GetString("otel.exporter.otlp.endpoint")),
		Protocol:      strings.ToLower(strings.TrimSpace(v.GetString("otel.exporter.otlp.protocol"))),
		SamplingRatio: v.GetFloat64("otel.sampling.ratio"),
	}
	if v.IsSet("otel.enabled") {
		enabled := v.GetBool("otel.enabled")
		t.Enabled = &enabled
	}
	return t
}
