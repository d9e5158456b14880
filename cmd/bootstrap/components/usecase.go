package components

import (
	"context"
	"log/slog"

	"table-booking/internal/pkg/clock"
	"table-booking/internal/usecase/session"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		session.NewRegistry,
	),
	fx.Invoke(closeSessionsOnStop),
)

func closeSessionsOnStop(lc fx.Lifecycle, registry *session.Registry, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing open sessions", "count", registry.Len())
			registry.CloseAll()
			return nil
		},
	})
}
