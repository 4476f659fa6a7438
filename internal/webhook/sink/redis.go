package sink

import (
	"context"
	"errors"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/chargify-bridge/internal/config"
	"github.com/smallbiznis/chargify-bridge/internal/webhook/domain"
	"github.com/smallbiznis/chargify-bridge/pkg/telemetry/correlation"
)

const RedisSinkName = "redis"

// RedisSink appends each event to a Redis stream.
type RedisSink struct {
	client *redis.Client
	stream string
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("webhook redis addr is required")
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.Password),
		DB:       cfg.DB,
	}), nil
}

func NewRedisSink(client *redis.Client, stream string) (*RedisSink, error) {
	if client == nil {
		return nil, errors.New("webhook redis client not configured")
	}
	stream = strings.TrimSpace(stream)
	if stream == "" {
		return nil, errors.New("webhook stream is empty")
	}
	return &RedisSink{client: client, stream: stream}, nil
}

func (s *RedisSink) Name() string { return RedisSinkName }

// Publish adds one stream entry. Correlation and trace ids ride along as
// extra fields.
func (s *RedisSink) Publish(ctx context.Context, event domain.Event) error {
	values := map[string]any{
		"event_id":     event.ID.String(),
		"received_at":  event.ReceivedAt.UTC().Format(time.RFC3339Nano),
		"content_type": event.ContentType,
		"body":         string(event.Body),
	}
	for key, value := range correlation.Fields(ctx) {
		values[key] = value
	}
	return s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: values,
	}).Err()
}
