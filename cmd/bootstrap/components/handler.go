package components

import (
	"table-booking/internal/handler"
	"table-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
