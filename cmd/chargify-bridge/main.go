package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/chargify-bridge/internal/chargify"
	"github.com/smallbiznis/chargify-bridge/internal/clock"
	"github.com/smallbiznis/chargify-bridge/internal/config"
	"github.com/smallbiznis/chargify-bridge/internal/observability"
	"github.com/smallbiznis/chargify-bridge/internal/server"
	"github.com/smallbiznis/chargify-bridge/internal/webhook"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,

		// Functional Domains
		chargify.Module,
		webhook.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
