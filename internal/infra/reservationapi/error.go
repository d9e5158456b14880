package reservationapi

import (
	"errors"
	"log/slog"
	"strconv"

	"table-booking/internal/pkg/errs"
)

type ErrorKind string

// Failure kinds. Rejected maps to errs.ErrServiceRejection, the rest to
// errs.ErrTransportFailure.
const (
	KindRejected  ErrorKind = "REJECTED"
	KindTransport ErrorKind = "TRANSPORT"
	KindMalformed ErrorKind = "MALFORMED"
)

type ServiceError struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	err        error // wrapped low-level error
}

func (e ServiceError) Error() string {
	msg := e.Op + ": " + string(e.Kind)
	if e.StatusCode != 0 {
		msg += ": status " + strconv.Itoa(e.StatusCode)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e ServiceError) Unwrap() error {
	return e.err
}

func wrapServiceErr(logger *slog.Logger, op string, kind ErrorKind, status int, err error) error {
	logArgs := []any{
		slog.String("op", op),
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status_code", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	logger.Warn("Reservation service call failed", logArgs...)

	if err != nil {
		err = errs.Wrap(err, op)
	}

	sentinel := errs.ErrTransportFailure
	if kind == KindRejected {
		sentinel = errs.ErrServiceRejection
	}
	return errs.Mark(ServiceError{Kind: kind, Op: op, StatusCode: status, err: err}, sentinel)
}

func IsKind(err error, kind ErrorKind) bool {
	var e ServiceError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func StatusCode(err error) int {
	var e ServiceError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
