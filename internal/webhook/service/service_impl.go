package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/chargify-bridge/internal/clock"
	"github.com/smallbiznis/chargify-bridge/internal/observability/logger"
	"github.com/smallbiznis/chargify-bridge/internal/observability/metrics"
	webhookdomain "github.com/smallbiznis/chargify-bridge/internal/webhook/domain"
	"github.com/smallbiznis/chargify-bridge/pkg/telemetry/correlation"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Sink    webhookdomain.Sink
	Clock   clock.Clock      `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	sink    webhookdomain.Sink
	clock   clock.Clock
	metrics *metrics.Metrics
}

func New(p Params) webhookdomain.Service {
	clk := p.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Service{
		log:     p.Log.Named("webhook.service"),
		genID:   p.GenID,
		sink:    p.Sink,
		clock:   clk,
		metrics: p.Metrics,
	}
}

// Forward wraps the raw delivery in an Event and publishes it. The event is
// returned even when the sink fails so the caller can report its id.
func (s *Service) Forward(ctx context.Context, contentType string, body []byte) (webhookdomain.Event, error) {
	ctx, cid := correlation.EnsureCorrelationID(ctx)
	event := webhookdomain.Event{
		ID:            s.genID.Generate(),
		ReceivedAt:    s.clock.Now().UTC(),
		ContentType:   contentType,
		Body:          body,
		CorrelationID: cid,
	}

	err := s.sink.Publish(ctx, event)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		logger.WithContext(ctx, s.log).Error("webhook forward failed",
			zap.String("event_id", event.ID.String()),
			zap.String("sink", s.sink.Name()),
			zap.Error(err),
		)
	}
	s.metrics.RecordWebhook(ctx, s.sink.Name(), outcome)
	return event, err
}
