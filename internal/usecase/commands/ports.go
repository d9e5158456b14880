package commands

import (
	"context"

	"table-booking/internal/domain/reservation"
)

type ReservationCreator interface {
	Create(ctx context.Context, draft reservation.Reservation) error
}

// Notifier surfaces submission results to the user.
type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
	NotifyFailure(ctx context.Context, message string, cause error)
}
