//go:build unit

package reservation_test

import (
	"encoding/json"
	"testing"
	"time"

	"table-booking/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	expected := reservation.Reservation{
		Name:            "",
		Phone:           "",
		NumberOfPeople:  1,
		Smoking:         false,
		DateTime:        "",
		SpecialRequests: "",
	}

	if diff := cmp.Diff(expected, reservation.Default()); diff != "" {
		t.Errorf("Default mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, reservation.Default().IsDefault())
}

func TestWith(t *testing.T) {
	t.Run("single update keeps siblings", func(t *testing.T) {
		base := reservation.Reservation{
			Name:            "Luigi",
			Phone:           "555-0100",
			NumberOfPeople:  3,
			Smoking:         true,
			DateTime:        "2024-05-01T20:30",
			SpecialRequests: "window seat",
		}

		for _, f := range reservation.Fields() {
			t.Run(f.String(), func(t *testing.T) {
				want := base
				var value any
				switch f {
				case reservation.FieldName:
					value, want.Name = "changed", "changed"
				case reservation.FieldPhone:
					value, want.Phone = "changed", "changed"
				case reservation.FieldNumberOfPeople:
					value, want.NumberOfPeople = 6, 6
				case reservation.FieldSmoking:
					value, want.Smoking = false, false
				case reservation.FieldDateTime:
					value, want.DateTime = "2024-06-01T18:00", "2024-06-01T18:00"
				case reservation.FieldSpecialRequests:
					value, want.SpecialRequests = "changed", "changed"
				}

				next, err := base.With(f, value)
				require.NoError(t, err)
				assert.Equal(t, want, next)
			})
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		type edit struct {
			field reservation.Field
			value any
		}
		edits := []edit{
			{reservation.FieldName, "Mario"},
			{reservation.FieldNumberOfPeople, 2},
			{reservation.FieldName, "Maria"},
			{reservation.FieldSmoking, true},
			{reservation.FieldNumberOfPeople, "5"},
			{reservation.FieldDateTime, "2024-01-01T19:00"},
			{reservation.FieldSpecialRequests, "high chair"},
			{reservation.FieldSmoking, false},
		}

		r := reservation.Default()
		for _, e := range edits {
			var err error
			r, err = r.With(e.field, e.value)
			require.NoError(t, err)
		}

		expected := reservation.Reservation{
			Name:            "Maria",
			Phone:           "",
			NumberOfPeople:  5,
			Smoking:         false,
			DateTime:        "2024-01-01T19:00",
			SpecialRequests: "high chair",
		}
		if diff := cmp.Diff(expected, r); diff != "" {
			t.Errorf("draft mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("receiver is never modified", func(t *testing.T) {
		base := reservation.Default()
		_, err := base.With(reservation.FieldName, "Mario")
		require.NoError(t, err)
		assert.True(t, base.IsDefault())
	})

	t.Run("number of people coercion", func(t *testing.T) {
		cases := []struct {
			name  string
			value any
			want  int
			ok    bool
		}{
			{name: "int", value: 4, want: 4, ok: true},
			{name: "int64", value: int64(7), want: 7, ok: true},
			{name: "integral float", value: float64(8), want: 8, ok: true},
			{name: "decimal text", value: " 3 ", want: 3, ok: true},
			{name: "fractional float", value: 2.5, ok: false},
			{name: "non-numeric text", value: "four", ok: false},
			{name: "bool", value: true, ok: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := reservation.Default().With(reservation.FieldNumberOfPeople, tc.value)
				if !tc.ok {
					assert.ErrorIs(t, err, reservation.ErrFieldTypeMismatch)
					assert.Equal(t, reservation.DefaultNumberOfPeople, got.NumberOfPeople)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.want, got.NumberOfPeople)
			})
		}
	})

	t.Run("type mismatch leaves record intact", func(t *testing.T) {
		base := reservation.Default()
		cases := []struct {
			field reservation.Field
			value any
		}{
			{reservation.FieldName, 42},
			{reservation.FieldPhone, true},
			{reservation.FieldSmoking, "yes"},
			{reservation.FieldDateTime, 12},
			{reservation.FieldSpecialRequests, nil},
		}
		for _, tc := range cases {
			got, err := base.With(tc.field, tc.value)
			assert.ErrorIs(t, err, reservation.ErrFieldTypeMismatch, "field %s", tc.field)
			assert.Equal(t, base, got)
		}
	})

	t.Run("date time from time.Time", func(t *testing.T) {
		at := time.Date(2024, 1, 1, 19, 0, 0, 0, time.Local)
		got, err := reservation.Default().With(reservation.FieldDateTime, at)
		require.NoError(t, err)
		assert.Equal(t, reservation.LocalDateTime("2024-01-01T19:00"), got.DateTime)

		parsed, err := got.DateTime.Time()
		require.NoError(t, err)
		assert.True(t, at.Equal(parsed))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := reservation.Default().With("tableNumber", "7")
		assert.ErrorIs(t, err, reservation.ErrUnknownField)

		_, err = reservation.ParseField("tableNumber")
		assert.ErrorIs(t, err, reservation.ErrUnknownField)
	})
}

func TestLocalDateTime(t *testing.T) {
	_, err := reservation.LocalDateTime("").Time()
	assert.ErrorIs(t, err, reservation.ErrInvalidDateTime)

	_, err = reservation.LocalDateTime("tomorrow").Time()
	assert.ErrorIs(t, err, reservation.ErrInvalidDateTime)

	withSeconds, err := reservation.LocalDateTime("2024-01-01T19:00:30").Time()
	require.NoError(t, err)
	assert.Equal(t, 30, withSeconds.Second())
}

func TestBookedDecode(t *testing.T) {
	t.Run("records keep order and accept id", func(t *testing.T) {
		payload := `[{"id":"a","name":"Alice","numberOfPeople":2,"dateTime":"2024-01-01T19:00"},
			{"id":"b","name":"Bob","numberOfPeople":4,"dateTime":"2024-01-01T20:00"}]`

		var got []reservation.Booked
		require.NoError(t, json.Unmarshal([]byte(payload), &got))

		expected := []reservation.Booked{
			{ID: "a", Reservation: reservation.Reservation{Name: "Alice", NumberOfPeople: 2, DateTime: "2024-01-01T19:00"}},
			{ID: "b", Reservation: reservation.Reservation{Name: "Bob", NumberOfPeople: 4, DateTime: "2024-01-01T20:00"}},
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("decoded mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("service shaped record", func(t *testing.T) {
		payload := `{"_id":"65a1","name":"Mario","phone":"333","numberOfPeople":"4","smoking":true,
			"dateTime":"2024-01-01T19:00","specialRequests":"","createdAt":"2024-01-01T10:00:00Z"}`

		var got reservation.Booked
		require.NoError(t, json.Unmarshal([]byte(payload), &got))

		assert.Equal(t, "65a1", got.ID)
		assert.Equal(t, 4, got.NumberOfPeople)
		assert.True(t, got.Smoking)
		require.NotNil(t, got.CreatedAt)
		assert.Nil(t, got.UpdatedAt)
		assert.Equal(t, "Mario for 4 at 2024-01-01T19:00", got.Summary())
	})

	t.Run("malformed head count", func(t *testing.T) {
		var got reservation.Booked
		err := json.Unmarshal([]byte(`{"_id":"x","numberOfPeople":{"n":1}}`), &got)
		assert.Error(t, err)
	})
}
