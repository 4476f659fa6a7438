package service

import (
	"context"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/response"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/routing"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/selfservice"
	"github.com/smallbiznis/chargify-bridge/internal/config"
	obscontext "github.com/smallbiznis/chargify-bridge/internal/observability/context"
	"github.com/smallbiznis/chargify-bridge/internal/observability/logger"
	"github.com/smallbiznis/chargify-bridge/internal/observability/metrics"
	obstracing "github.com/smallbiznis/chargify-bridge/internal/observability/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const tracerName = "chargify-bridge/service"

type Params struct {
	fx.In

	Cfg       config.Config
	Log       *zap.Logger
	Transport domain.Transport
	Router    *routing.Router
	Metrics   *metrics.Metrics `optional:"true"`
}

type Service struct {
	log         *zap.Logger
	transport   domain.Transport
	router      *routing.Router
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	selfService selfservice.Settings
}

func New(p Params) domain.Service {
	router := p.Router
	if router == nil {
		router = routing.NewRouter()
	}
	return &Service{
		log:       p.Log.Named("chargify.service"),
		transport: p.Transport,
		router:    router,
		metrics:   p.Metrics,
		tracer:    otel.Tracer(tracerName),
		selfService: selfservice.Settings{
			Subdomain: p.Cfg.Chargify.Subdomain,
			Domain:    p.Cfg.Chargify.Domain,
			SharedKey: p.Cfg.Chargify.SiteSharedKey,
		},
	}
}

// GetStats returns the site statistics document as received.
func (s *Service) GetStats(ctx context.Context) (domain.Document, error) {
	return call(ctx, s, "getStats", func(ctx context.Context) (domain.Document, error) {
		req := s.router.Request(domain.OpRead, domain.KindStats, routing.Address{}, nil)
		doc, err := s.transport.Do(ctx, req)
		if err != nil {
			return nil, response.Classify(domain.KindStats, err)
		}
		s.logger(ctx).Info("stats retrieved", zap.Int("fields", len(doc)))
		return doc, nil
	})
}

// CalculateSelfServiceURL builds the hosted payment-update page URL locally.
// No provider call is made.
func (s *Service) CalculateSelfServiceURL(ctx context.Context, in *domain.SelfServiceRequest) (domain.SelfServiceURL, error) {
	return call(ctx, s, "calculateSelfServiceUrl", func(ctx context.Context) (domain.SelfServiceURL, error) {
		var providerID string
		if in != nil {
			providerID = domain.Value(in.ChargifyID)
		}
		url, err := selfservice.URL(s.selfService, providerID)
		if err != nil {
			return domain.SelfServiceURL{}, err
		}
		s.logger(ctx).Debug("self-service url calculated", zap.String("chargify_id", providerID))
		return domain.SelfServiceURL{Body: url}, nil
	})
}

func (s *Service) logger(ctx context.Context) *zap.Logger {
	return logger.WithContext(ctx, s.log)
}

// do sends one request built by the router.
func (s *Service) do(ctx context.Context, op domain.Operation, kind domain.Kind, addr routing.Address, body any) (domain.Document, error) {
	return s.transport.Do(ctx, s.router.Request(op, kind, addr, body))
}

// call runs fn inside a span and records its outcome.
func call[T any](ctx context.Context, s *Service, function string, fn func(context.Context) (T, error)) (T, error) {
	if obscontext.FunctionFromContext(ctx) == "" {
		ctx = obscontext.WithFunction(ctx, function)
	}
	ctx, span := s.tracer.Start(ctx, "chargify."+function, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	out, err := fn(ctx)
	outcome := domain.ErrorType(err)
	span.SetAttributes(obstracing.SafeAttributes(
		attribute.String("chargify.function", function),
		attribute.String("chargify.outcome", outcome),
	)...)
	if err != nil {
		if safeErr := obstracing.SafeError(err); safeErr != nil {
			span.RecordError(safeErr)
		}
		span.SetStatus(codes.Error, outcome)
		s.logger(ctx).Warn("chargify call failed",
			zap.String("error_type", outcome),
			zap.Error(err),
		)
	}
	s.metrics.RecordProviderRequest(ctx, function, outcome)
	return out, err
}
