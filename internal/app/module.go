package app

import (
	"go.uber.org/fx"

	"logdeck/internal/app/cli"
	"logdeck/internal/app/demo"
	"logdeck/internal/app/generator"
	"logdeck/internal/app/layout"
	"logdeck/internal/app/logs"
	"logdeck/internal/app/monitor"
	uilogs "logdeck/internal/app/ui/logs"
	"logdeck/internal/app/view"
	"logdeck/internal/app/watcher"
)

// Module wires the whole application
var Module = fx.Options(
	logs.Module,
	layout.Module,
	view.Module,
	monitor.Module,
	watcher.Module,
	demo.Module,
	generator.Module,
	uilogs.Module,
	cli.Module,
	fx.Provide(
		NewLogger,
		NewApp,
	),
	fx.Invoke(Register),
)
