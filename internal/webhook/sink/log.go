package sink

import (
	"context"

	"github.com/smallbiznis/chargify-bridge/internal/observability/logger"
	"github.com/smallbiznis/chargify-bridge/internal/webhook/domain"
	"go.uber.org/zap"
)

const LogSinkName = "log"

// LogSink writes each event to the application log.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log.Named("webhook.sink")}
}

func (s *LogSink) Name() string { return LogSinkName }

func (s *LogSink) Publish(ctx context.Context, event domain.Event) error {
	logger.WithContext(ctx, s.log).Info("webhook received",
		zap.String("event_id", event.ID.String()),
		zap.String("content_type", event.ContentType),
		zap.Int("bytes", len(event.Body)),
		zap.Time("received_at", event.ReceivedAt),
	)
	logger.WithContext(ctx, s.log).Debug("webhook body", zap.ByteString("body", event.Body))
	return nil
}
