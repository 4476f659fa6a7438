package sink

import (
	"context"

	"github.com/smallbiznis/chargify-bridge/internal/config"
	"github.com/smallbiznis/chargify-bridge/internal/webhook/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Lc  fx.Lifecycle
	Cfg config.Config
	Log *zap.Logger
}

// Provide selects the sink named by the webhook configuration.
func Provide(p Params) (domain.Sink, error) {
	if p.Cfg.Webhook.Sink != RedisSinkName {
		return NewLogSink(p.Log), nil
	}

	client, err := NewRedisClient(p.Cfg.Redis)
	if err != nil {
		return nil, err
	}
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	p.Log.Info("webhook sink configured",
		zap.String("sink", RedisSinkName),
		zap.String("redis_addr", p.Cfg.Redis.Addr),
		zap.String("stream", p.Cfg.Webhook.Stream),
	)
	return NewRedisSink(client, p.Cfg.Webhook.Stream)
}
