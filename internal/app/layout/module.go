package layout

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the layout package
var Module = fx.Options(
	fx.Provide(NewFormatter),
)
