package webhook

import (
	"github.com/smallbiznis/chargify-bridge/internal/webhook/service"
	"github.com/smallbiznis/chargify-bridge/internal/webhook/sink"
	"go.uber.org/fx"
)

var Module = fx.Module("webhook.service",
	fx.Provide(sink.Provide),
	fx.Provide(service.New),
)
