package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/observable"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	MessageSaved  = "reservation saved!"
	MessageFailed = "something went wrong!"
)

type SubmitOutcome string

const (
	OutcomeSaved       SubmitOutcome = "saved"
	OutcomeRejected    SubmitOutcome = "rejected"
	OutcomeUnreachable SubmitOutcome = "unreachable"
	// the controller was closed while the request was in flight
	OutcomeDiscarded SubmitOutcome = "discarded"
)

type DraftOptions struct {
	SingleFlight bool
}

// SubmitOption adjusts a single Submit call.
type SubmitOption func(*submitOptions)

type submitOptions struct {
	precheck func(reservation.Reservation) error
}

// WithPrecheck runs check on the exact snapshot that would be sent. A non-nil
// error aborts the submission before any request or notification.
func WithPrecheck(check func(reservation.Reservation) error) SubmitOption {
	return func(o *submitOptions) {
		o.precheck = check
	}
}

type DraftCommands interface {
	Draft() reservation.Reservation
	UpdateField(field reservation.Field, value any) (reservation.Reservation, error)
	ResetDraft()
	Submit(ctx context.Context, opts ...SubmitOption) (SubmitOutcome, error)
	Subscribe(fn func(reservation.Reservation)) (cancel func())
	Close()
}

type draftCommandsImpl struct {
	creator  ReservationCreator
	notifier Notifier
	logger   *slog.Logger
	opts     DraftOptions
	draft    *observable.Value[reservation.Reservation]

	mu       sync.Mutex
	inFlight int
	closed   bool
}

func NewDraftCommands(
	creator ReservationCreator,
	notifier Notifier,
	logger *slog.Logger,
	opts DraftOptions,
) DraftCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &draftCommandsImpl{
		creator:  creator,
		notifier: notifier,
		logger:   logger,
		opts:     opts,
		draft:    observable.New(reservation.Default()),
	}
}

func (d *draftCommandsImpl) Draft() reservation.Reservation {
	return d.draft.Get()
}

func (d *draftCommandsImpl) UpdateField(field reservation.Field, value any) (reservation.Reservation, error) {
	if d.isClosed() {
		return d.draft.Get(), errs.ErrControllerClosed
	}
	next, err := d.draft.Update(func(cur reservation.Reservation) (reservation.Reservation, error) {
		return cur.With(field, value)
	})
	if errors.Is(err, observable.ErrClosed) {
		return next, errs.ErrControllerClosed
	}
	return next, err
}

func (d *draftCommandsImpl) ResetDraft() {
	if d.isClosed() {
		return
	}
	d.draft.Set(reservation.Default())
}

// Submit sends the current draft as is and blocks until the service answers.
// Success resets the draft; any failure leaves it for the user to retry.
func (d *draftCommandsImpl) Submit(ctx context.Context, opts ...SubmitOption) (SubmitOutcome, error) {
	ctx, span := tracer.Start(ctx, "Submit")
	defer span.End()

	var o submitOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := d.begin(); err != nil {
		span.RecordError(err)
		return "", err
	}
	defer d.end()

	snapshot := d.draft.Get()
	if o.precheck != nil {
		if err := o.precheck(snapshot); err != nil {
			d.logger.Debug("Submission blocked by precheck", "error", err)
			span.RecordError(err)
			return "", err
		}
	}
	d.logger.Info("Submitting reservation",
		slog.Int("number_of_people", snapshot.NumberOfPeople),
		slog.Bool("smoking", snapshot.Smoking),
		slog.String("date_time", snapshot.DateTime.String()),
	)

	err := d.creator.Create(ctx, snapshot)

	if d.isClosed() {
		d.logger.Debug("Submission result discarded, controller closed", "error", err)
		span.SetAttributes(attribute.String("outcome", string(OutcomeDiscarded)))
		return OutcomeDiscarded, err
	}

	if err != nil {
		outcome := OutcomeUnreachable
		if errs.Is(err, errs.ErrServiceRejection) {
			outcome = OutcomeRejected
		}
		d.logger.Warn("Reservation submission failed", "outcome", outcome, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(outcome))
		span.SetAttributes(attribute.String("outcome", string(outcome)))

		d.notifier.NotifyFailure(ctx, MessageFailed, err)
		return outcome, err
	}

	d.logger.Info("Reservation submitted")
	span.SetAttributes(attribute.String("outcome", string(OutcomeSaved)))

	d.notifier.NotifySuccess(ctx, MessageSaved)
	d.ResetDraft()
	return OutcomeSaved, nil
}

func (d *draftCommandsImpl) Subscribe(fn func(reservation.Reservation)) func() {
	return d.draft.Subscribe(fn)
}

func (d *draftCommandsImpl) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.draft.Close()
}

func (d *draftCommandsImpl) begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errs.ErrControllerClosed
	}
	if d.opts.SingleFlight && d.inFlight > 0 {
		return errs.ErrSubmissionInProgress
	}
	d.inFlight++
	return nil
}

func (d *draftCommandsImpl) end() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inFlight--
}

func (d *draftCommandsImpl) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
