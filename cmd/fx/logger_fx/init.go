package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"fyyurtrivia/internal/infra"
)

var Module = fx.Options(
	fx.Provide(infra.NewLogger),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
	fx.Invoke(syncOnStop),
)

func syncOnStop(lc fx.Lifecycle, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stderr sync fails on some terminals; nothing useful to do with it.
			_ = log.Sync()
			return nil
		},
	})
}
