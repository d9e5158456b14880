package converter

import (
	"table-booking/internal/domain/reservation"

	"github.com/jinzhu/copier"
)

// CreateReservationBody is the create endpoint payload: every draft field, no id.
type CreateReservationBody struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	NumberOfPeople  int    `json:"numberOfPeople"`
	Smoking         bool   `json:"smoking"`
	DateTime        string `json:"dateTime"`
	SpecialRequests string `json:"specialRequests"`
}

func ReservationToCreateBody(res reservation.Reservation) (CreateReservationBody, error) {
	var body CreateReservationBody
	if err := copier.Copy(&body, &res); err != nil {
		return CreateReservationBody{}, err
	}
	return body, nil
}
