package chargify

import (
	"github.com/smallbiznis/chargify-bridge/internal/chargify/client"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/routing"
	"github.com/smallbiznis/chargify-bridge/internal/chargify/service"
	"github.com/smallbiznis/chargify-bridge/internal/config"
	"github.com/smallbiznis/chargify-bridge/internal/observability/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("chargify.service",
	fx.Provide(provideTransport),
	fx.Provide(routing.NewRouter),
	fx.Provide(service.New),
	fx.Invoke(logSettings),
)

func provideTransport(cfg config.Config) (domain.Transport, error) {
	return client.New(cfg.Chargify)
}

func logSettings(cfg config.Config, log *zap.Logger) {
	log.Info("chargify endpoint configured",
		zap.String("site", cfg.Chargify.SiteURL()),
		zap.String("api_key", logger.MaskAPIKey(cfg.Chargify.APIKey)),
		zap.String("site_shared_key", logger.MaskAPIKey(cfg.Chargify.SiteSharedKey)),
	)
}
