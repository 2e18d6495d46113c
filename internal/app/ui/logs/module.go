package logs

import "go.uber.org/fx"

// Module provides the log view dependencies
var Module = fx.Options(
	fx.Provide(NewSender),
)
