package reservation

import "fmt"

// Field names a Reservation field by its wire name.
type Field string

const (
	FieldName            Field = "name"
	FieldPhone           Field = "phone"
	FieldNumberOfPeople  Field = "numberOfPeople"
	FieldSmoking         Field = "smoking"
	FieldDateTime        Field = "dateTime"
	FieldSpecialRequests Field = "specialRequests"
)

var allFields = []Field{
	FieldName,
	FieldPhone,
	FieldNumberOfPeople,
	FieldSmoking,
	FieldDateTime,
	FieldSpecialRequests,
}

func Fields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

func (f Field) String() string {
	return string(f)
}

func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldPhone, FieldNumberOfPeople, FieldSmoking, FieldDateTime, FieldSpecialRequests:
		return true
	default:
		return false
	}
}
