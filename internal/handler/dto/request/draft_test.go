//go:build unit

package request_test

import (
	"testing"

	"table-booking/internal/domain/reservation"
	reqdto "table-booking/internal/handler/dto/request"
	"table-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSubmittable(t *testing.T) {
	tests := []struct {
		name  string
		draft reservation.Reservation
		want  []string
	}{
		{
			name:  "filled draft passes",
			draft: builder.NewReservationBuilder().BuildDraft(),
		},
		{
			name:  "default draft misses the required text fields",
			draft: reservation.Default(),
			want:  []string{"name", "phone", "dateTime"},
		},
		{
			name:  "unparseable date-time",
			draft: builder.NewReservationBuilder().WithDateTime("next friday").BuildDraft(),
			want:  []string{"dateTime"},
		},
		{
			name:  "party over the limit",
			draft: builder.NewReservationBuilder().WithNumberOfPeople(9).BuildDraft(),
			want:  []string{"numberOfPeople"},
		},
		{
			name:  "seconds are accepted",
			draft: builder.NewReservationBuilder().WithDateTime("2024-01-01T19:00:30").BuildDraft(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reqdto.CheckSubmittable(tt.draft)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var missing *reqdto.MissingFieldsError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.want, missing.Fields)
			assert.Contains(t, err.Error(), tt.want[0])
		})
	}
}
