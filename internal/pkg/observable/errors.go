package observable

import "errors"

var ErrClosed = errors.New("observable closed")
