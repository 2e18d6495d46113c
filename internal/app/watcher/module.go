package watcher

import "go.uber.org/fx"

// Module provides the configuration watcher
var Module = fx.Options(
	fx.Provide(NewWatcher),
)
