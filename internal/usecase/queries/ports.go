package queries

import (
	"context"

	"table-booking/internal/domain/reservation"
)

type ReservationLister interface {
	List(ctx context.Context) ([]reservation.Booked, error)
}
