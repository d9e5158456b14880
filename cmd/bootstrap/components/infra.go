package components

import (
	"table-booking/internal/infra/reservationapi"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		reservationapi.NewClient,
		func(c *reservationapi.Client) commands.ReservationCreator { return c },
		func(c *reservationapi.Client) queries.ReservationLister { return c },
	),
)
