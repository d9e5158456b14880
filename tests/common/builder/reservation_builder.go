//go:build unit || e2e

package builder

import (
	"table-booking/internal/domain/reservation"
	reqdto "table-booking/internal/handler/dto/request"
)

type ReservationBuilder struct {
	ID              string
	Name            string
	Phone           string
	NumberOfPeople  int
	Smoking         bool
	DateTime        string
	SpecialRequests string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              "65a0c0ffee",
		Name:            "Mario Rossi",
		Phone:           "+39 333 123 4567",
		NumberOfPeople:  4,
		Smoking:         false,
		DateTime:        "2024-01-01T19:00",
		SpecialRequests: "table by the window",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDraft() reservation.Reservation {
	return reservation.Reservation{
		Name:            b.Name,
		Phone:           b.Phone,
		NumberOfPeople:  b.NumberOfPeople,
		Smoking:         b.Smoking,
		DateTime:        reservation.LocalDateTime(b.DateTime),
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildBooked() reservation.Booked {
	return reservation.Booked{
		ID:          b.ID,
		Reservation: b.BuildDraft(),
	}
}

// Edits replays the draft as the field edits a form would emit.
func (b *ReservationBuilder) Edits() []reqdto.UpdateFieldRequest {
	return []reqdto.UpdateFieldRequest{
		{Field: string(reservation.FieldName), Value: b.Name},
		{Field: string(reservation.FieldPhone), Value: b.Phone},
		{Field: string(reservation.FieldNumberOfPeople), Value: b.NumberOfPeople},
		{Field: string(reservation.FieldSmoking), Value: b.Smoking},
		{Field: string(reservation.FieldDateTime), Value: b.DateTime},
		{Field: string(reservation.FieldSpecialRequests), Value: b.SpecialRequests},
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithName(name string) *ReservationBuilder {
	b.Name = name
	return b
}

func (b *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	b.Phone = phone
	return b
}

func (b *ReservationBuilder) WithNumberOfPeople(n int) *ReservationBuilder {
	b.NumberOfPeople = n
	return b
}

func (b *ReservationBuilder) WithSmoking(smoking bool) *ReservationBuilder {
	b.Smoking = smoking
	return b
}

func (b *ReservationBuilder) WithDateTime(dateTime string) *ReservationBuilder {
	b.DateTime = dateTime
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.SpecialRequests = requests
	return b
}
