package request

import (
	"errors"
	"strings"

	"table-booking/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UpdateFieldRequest edits one draft field. Value must carry the field's type.
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

func (r UpdateFieldRequest) ToDomain() (reservation.Field, error) {
	return reservation.ParseField(r.Field)
}

// SubmitForm holds the draft fields the booking form marks as required.
type SubmitForm struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	NumberOfPeople int    `json:"numberOfPeople" binding:"required,min=1,max=8"`
	DateTime       string `json:"dateTime" binding:"required"`
}

func NewSubmitForm(draft reservation.Reservation) SubmitForm {
	return SubmitForm{
		Name:           draft.Name,
		Phone:          draft.Phone,
		NumberOfPeople: draft.NumberOfPeople,
		DateTime:       draft.DateTime.String(),
	}
}

// Validate returns the wire names of the fields that fail their constraint,
// or nil when the form may be submitted. A dateTime must also parse as a
// local date-time.
func (f SubmitForm) Validate() ([]string, error) {
	var invalid []string
	if err := binding.Validator.ValidateStruct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			invalid = append(invalid, jsonName(fe.StructField()))
		}
	}
	if f.DateTime != "" {
		if _, err := reservation.LocalDateTime(f.DateTime).Time(); err != nil {
			invalid = append(invalid, reservation.FieldDateTime.String())
		}
	}
	return invalid, nil
}

// MissingFieldsError blocks a submission whose draft fails SubmitForm.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}

// CheckSubmittable validates draft as a SubmitForm.
func CheckSubmittable(draft reservation.Reservation) error {
	invalid, err := NewSubmitForm(draft).Validate()
	if err != nil {
		return err
	}
	if len(invalid) > 0 {
		return &MissingFieldsError{Fields: invalid}
	}
	return nil
}

func jsonName(structField string) string {
	switch structField {
	case "Name":
		return reservation.FieldName.String()
	case "Phone":
		return reservation.FieldPhone.String()
	case "NumberOfPeople":
		return reservation.FieldNumberOfPeople.String()
	case "DateTime":
		return reservation.FieldDateTime.String()
	default:
		return structField
	}
}
