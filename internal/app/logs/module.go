package logs

import (
	"context"

	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the logs package
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewSink,
		NewWriter,
	),
	fx.Invoke(Register),
)

// Register attaches the sink to the facade; a second registration fails application start
func Register(lifecycle fx.Lifecycle, writer Writer, sink Sink) error {
	if err := writer.Register(sink); err != nil {
		return err
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Unregister()
		},
	})

	return nil
}
