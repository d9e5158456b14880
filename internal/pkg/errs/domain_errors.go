package errs

import "errors"

// Sentinel errors shared by the controllers and the service client
var (
	// Reservation Service errors
	ErrServiceRejection = errors.New("reservation service rejected the request")
	ErrTransportFailure = errors.New("reservation service unreachable")

	// Controller errors
	ErrSubmissionInProgress = errors.New("submission in progress")
	ErrControllerClosed     = errors.New("controller closed")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
