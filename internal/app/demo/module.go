package demo

import "go.uber.org/fx"

// Module provides the demo producer
var Module = fx.Options(
	fx.Provide(NewProducer),
)
