package reservation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Booked is a reservation the service has accepted and assigned an ID to.
type Booked struct {
	ID string `json:"_id"`
	Reservation
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// UnmarshalJSON accepts both "_id" and "id", and a head count sent either as a
// number or as text.
func (b *Booked) UnmarshalJSON(data []byte) error {
	type alias Booked
	var aux struct {
		alias
		AltID          string          `json:"id"`
		NumberOfPeople json.RawMessage `json:"numberOfPeople"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	people, err := decodeHeadcount(aux.NumberOfPeople)
	if err != nil {
		return err
	}

	*b = Booked(aux.alias)
	if b.ID == "" {
		b.ID = aux.AltID
	}
	b.NumberOfPeople = people
	return nil
}

func decodeHeadcount(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("numberOfPeople: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("numberOfPeople: %w", err)
	}
	return n, nil
}

// Summary is the one-line rendering used by list views.
func (b Booked) Summary() string {
	return fmt.Sprintf("%s for %d at %s", b.Name, b.NumberOfPeople, b.DateTime)
}
