package queries

import (
	"context"
	"log/slog"
	"sync"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/observable"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ReservationListQueries is a one-shot snapshot of the service's reservations.
// A failed load is only logged: the list simply stays empty.
type ReservationListQueries interface {
	Activate(ctx context.Context) error
	Reservations() []reservation.Booked
	Loaded() bool
	LastError() error
	Subscribe(fn func([]reservation.Booked)) (cancel func())
	Close()
}

type reservationListImpl struct {
	lister ReservationLister
	logger *slog.Logger
	list   *observable.Value[[]reservation.Booked]

	mu        sync.Mutex
	activated bool
	loaded    bool
	closed    bool
	lastErr   error
}

func NewReservationListQueries(lister ReservationLister, logger *slog.Logger) ReservationListQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &reservationListImpl{
		lister: lister,
		logger: logger,
		list:   observable.New([]reservation.Booked{}),
	}
}

// Activate loads the list on its first call only.
func (q *reservationListImpl) Activate(ctx context.Context) error {
	q.mu.Lock()
	if q.activated || q.closed {
		q.mu.Unlock()
		return nil
	}
	q.activated = true
	q.mu.Unlock()

	ctx, span := tracer.Start(ctx, "Activate")
	defer span.End()

	records, err := q.lister.List(ctx)

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Debug("Reservation list discarded, controller closed")
		return err
	}
	if err != nil {
		q.lastErr = err
		q.mu.Unlock()

		q.logger.Warn("Failed to load reservations", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return err
	}
	q.loaded = true
	q.lastErr = nil
	q.mu.Unlock()

	// Close may land here; a closed list refuses the snapshot
	if !q.list.Set(cloneBooked(records)) {
		q.logger.Debug("Reservation list discarded, controller closed")
		return nil
	}
	span.SetAttributes(attribute.Int("reservations.count", len(records)))
	q.logger.Info("Reservations loaded", "count", len(records))
	return nil
}

func (q *reservationListImpl) Reservations() []reservation.Booked {
	return cloneBooked(q.list.Get())
}

func (q *reservationListImpl) Loaded() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loaded
}

func (q *reservationListImpl) LastError() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastErr
}

func (q *reservationListImpl) Subscribe(fn func([]reservation.Booked)) func() {
	return q.list.Subscribe(func(records []reservation.Booked) {
		fn(cloneBooked(records))
	})
}

// Close stops publication. Once it returns no subscriber is notified again.
func (q *reservationListImpl) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.list.Close()
}

func cloneBooked(in []reservation.Booked) []reservation.Booked {
	out := make([]reservation.Booked, len(in))
	copy(out, in)
	return out
}
