package view

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the view package
var Module = fx.Options(
	fx.Provide(NewViewer),
)
