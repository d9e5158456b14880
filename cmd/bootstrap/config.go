package bootstrap

import (
	"table-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.ReservationAPIConfig { return cfg.ReservationAPI },
		func(cfg config.Config) config.DraftConfig { return cfg.Draft },
		func(cfg config.Config) config.SessionConfig { return cfg.Session },
	),
)
