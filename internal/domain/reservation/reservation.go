package reservation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownField      = errors.New("unknown reservation field")
	ErrFieldTypeMismatch = errors.New("field value type mismatch")
)

const (
	DefaultNumberOfPeople = 1
	MinNumberOfPeople     = 1
	MaxNumberOfPeople     = 8
)

// Reservation is the record a user fills in before booking a table. The zero
// value is not a valid draft; start from Default.
type Reservation struct {
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	NumberOfPeople  int           `json:"numberOfPeople"`
	Smoking         bool          `json:"smoking"`
	DateTime        LocalDateTime `json:"dateTime"`
	SpecialRequests string        `json:"specialRequests"`
}

func Default() Reservation {
	return Reservation{
		Name:            "",
		Phone:           "",
		NumberOfPeople:  DefaultNumberOfPeople,
		Smoking:         false,
		DateTime:        "",
		SpecialRequests: "",
	}
}

func (r Reservation) IsDefault() bool {
	return r == Default()
}

// With returns a copy of r with field set to value. Only the Go type of value
// is checked.
func (r Reservation) With(field Field, value any) (Reservation, error) {
	next := r
	var err error

	switch field {
	case FieldName:
		next.Name, err = asString(field, value)
	case FieldPhone:
		next.Phone, err = asString(field, value)
	case FieldNumberOfPeople:
		next.NumberOfPeople, err = asInt(field, value)
	case FieldSmoking:
		next.Smoking, err = asBool(field, value)
	case FieldDateTime:
		next.DateTime, err = asLocalDateTime(field, value)
	case FieldSpecialRequests:
		next.SpecialRequests, err = asString(field, value)
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}

	if err != nil {
		return r, err
	}
	return next, nil
}

func mismatch(field Field, want string, value any) error {
	return fmt.Errorf("%w: %s expects %s, got %T", ErrFieldTypeMismatch, field, want, value)
}

func asString(field Field, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", mismatch(field, "string", value)
	}
	return s, nil
}

func asBool(field Field, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, mismatch(field, "bool", value)
	}
	return b, nil
}

// select controls deliver the head count as text, JSON decoding as float64
func asInt(field Field, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, mismatch(field, "integer", value)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, mismatch(field, "integer", value)
		}
		return n, nil
	default:
		return 0, mismatch(field, "integer", value)
	}
}

func asLocalDateTime(field Field, value any) (LocalDateTime, error) {
	switch v := value.(type) {
	case LocalDateTime:
		return v, nil
	case string:
		return LocalDateTime(v), nil
	case time.Time:
		return NewLocalDateTime(v), nil
	default:
		return "", mismatch(field, "local date-time", value)
	}
}
