package response

import (
	"table-booking/internal/domain/reservation"
	"table-booking/internal/usecase/session"

	"github.com/jinzhu/copier"
)

type SessionResponse struct {
	ID        string        `json:"id"`
	CreatedAt int64         `json:"createdAt"`
	Draft     DraftResponse `json:"draft"`
}

func FromSession(s *session.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID.String(),
		CreatedAt: s.CreatedAt.Unix(),
		Draft:     FromDraft(s.Draft.Draft()),
	}
}

type ReservationItemResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	NumberOfPeople  int    `json:"numberOfPeople"`
	Smoking         bool   `json:"smoking"`
	DateTime        string `json:"dateTime"`
	SpecialRequests string `json:"specialRequests"`
	Summary         string `json:"summary"`
}

type ReservationListResponse struct {
	// false until the one load has succeeded; an empty list may still be loading
	Loaded       bool                      `json:"loaded"`
	Reservations []ReservationItemResponse `json:"reservations"`
}

func FromReservationList(records []reservation.Booked, loaded bool) ReservationListResponse {
	items := make([]ReservationItemResponse, len(records))
	for i, rec := range records {
		_ = copier.Copy(&items[i], &rec.Reservation)
		items[i].ID = rec.ID
		items[i].Summary = rec.Summary()
	}
	return ReservationListResponse{Loaded: loaded, Reservations: items}
}
