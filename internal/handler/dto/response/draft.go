package response

import (
	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra/notify"
	"table-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type DraftResponse struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	NumberOfPeople  int    `json:"numberOfPeople"`
	Smoking         bool   `json:"smoking"`
	DateTime        string `json:"dateTime"`
	SpecialRequests string `json:"specialRequests"`
}

func FromDraft(r reservation.Reservation) DraftResponse {
	var res DraftResponse
	_ = copier.Copy(&res, &r)
	return res
}

type NotificationResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	At      int64  `json:"at"`
}

func FromNotifications(items []notify.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(items))
	for i, n := range items {
		res[i] = NotificationResponse{
			Level:   string(n.Level),
			Message: n.Message,
			At:      n.At.Unix(),
		}
	}
	return res
}

type SubmitResponse struct {
	Outcome       string                 `json:"outcome"`
	Draft         DraftResponse          `json:"draft"`
	Notifications []NotificationResponse `json:"notifications"`
}

func FromSubmit(outcome commands.SubmitOutcome, draft reservation.Reservation, notes []notify.Notification) SubmitResponse {
	return SubmitResponse{
		Outcome:       string(outcome),
		Draft:         FromDraft(draft),
		Notifications: FromNotifications(notes),
	}
}

type SubmitFailureDetail struct {
	Outcome       string                 `json:"outcome"`
	Notifications []NotificationResponse `json:"notifications"`
}

type InvalidFieldsDetail struct {
	Fields []string `json:"fields"`
}
