package reservation

import (
	"errors"
	"time"
)

// LocalDateTimeLayout is the datetime-local input format, minute precision.
const LocalDateTimeLayout = "2006-01-02T15:04"

var localDateTimeLayouts = []string{
	LocalDateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

var ErrInvalidDateTime = errors.New("invalid local date-time")

// LocalDateTime is a wall-clock timestamp without a zone, kept in its textual
// form so an unset value stays "".
type LocalDateTime string

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime(t.Format(LocalDateTimeLayout))
}

func (d LocalDateTime) String() string {
	return string(d)
}

func (d LocalDateTime) IsZero() bool {
	return d == ""
}

// Time parses d in time.Local.
func (d LocalDateTime) Time() (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, ErrInvalidDateTime
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, string(d), time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
