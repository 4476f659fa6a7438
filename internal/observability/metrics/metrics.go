package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	providerRequestsName = "chargify_provider_requests_total"
	webhooksName         = "chargify_webhooks_total"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments. Every count goes both to
// the OTLP pipeline and to the local Prometheus registry served on /metrics.
type Metrics struct {
	providerRequests metric.Int64Counter
	webhooks         metric.Int64Counter

	promProviderRequests *prometheus.CounterVec
	promWebhooks         *prometheus.CounterVec
}

// NewRegistry builds the Prometheus registry scraped on /metrics.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain instruments.
func New(cfg Config, provider metric.MeterProvider, registry *prometheus.Registry) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "chargify-bridge"
	}
	meter := provider.Meter(name)

	providerRequests, err := meter.Int64Counter(providerRequestsName)
	if err != nil {
		return nil, err
	}
	webhooks, err := meter.Int64Counter(webhooksName)
	if err != nil {
		return nil, err
	}

	promProviderRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: providerRequestsName,
		Help: "Endpoint function calls by outcome.",
	}, []string{"function", "outcome"})
	promWebhooks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: webhooksName,
		Help: "Webhook deliveries forwarded by sink and outcome.",
	}, []string{"sink", "outcome"})
	if registry != nil {
		if err := registry.Register(promProviderRequests); err != nil {
			return nil, err
		}
		if err := registry.Register(promWebhooks); err != nil {
			return nil, err
		}
	}

	return &Metrics{
		providerRequests:     providerRequests,
		webhooks:             webhooks,
		promProviderRequests: promProviderRequests,
		promWebhooks:         promWebhooks,
	}, nil
}

// RecordProviderRequest counts one endpoint function call.
func (m *Metrics) RecordProviderRequest(ctx context.Context, function, outcome string) {
	if m == nil {
		return
	}
	function = strings.TrimSpace(function)
	outcome = strings.TrimSpace(outcome)
	attrs := FilterAttributes(
		attribute.String("function", function),
		attribute.String("outcome", outcome),
	)
	m.providerRequests.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.promProviderRequests.WithLabelValues(function, outcome).Inc()
}

// RecordWebhook counts one forwarded webhook delivery.
func (m *Metrics) RecordWebhook(ctx context.Context, sink, outcome string) {
	if m == nil {
		return
	}
	sink = strings.TrimSpace(sink)
	outcome = strings.TrimSpace(outcome)
	attrs := FilterAttributes(
		attribute.String("sink", sink),
		attribute.String("outcome", outcome),
	)
	m.webhooks.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.promWebhooks.WithLabelValues(sink, outcome).Inc()
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"endpoint":    {},
	"status_code": {},
	"function":    {},
	"outcome":     {},
	"sink":        {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
