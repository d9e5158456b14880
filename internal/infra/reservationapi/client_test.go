//go:build unit

package reservationapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra/reservationapi"
	"table-booking/internal/pkg/errs"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/stubapi"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	stub   *stubapi.Server
	client *reservationapi.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.stub = stubapi.New(s.T())
	s.client = reservationapi.NewClient(s.stub.Config(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestCreate() {
	draft := builder.NewReservationBuilder().BuildDraft()

	s.Run("success: posts the draft as JSON", func() {
		err := s.client.Create(context.Background(), draft)
		s.Require().NoError(err)

		created := s.stub.Created()
		s.Require().Len(created, 1)
		s.Equal(map[string]any{
			"name":            draft.Name,
			"phone":           draft.Phone,
			"numberOfPeople":  float64(draft.NumberOfPeople),
			"smoking":         draft.Smoking,
			"dateTime":        draft.DateTime.String(),
			"specialRequests": draft.SpecialRequests,
		}, created[0])

		headers := s.stub.CreateHeaders()[0]
		s.Equal("application/json", headers.Get("Content-Type"))
		_, err = uuid.Parse(headers.Get("X-Request-ID"))
		s.NoError(err)
	})

	s.Run("error: non-2xx is a service rejection", func() {
		for _, status := range []int{http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError} {
			s.stub.SetCreateStatus(status)

			err := s.client.Create(context.Background(), draft)
			s.Require().Error(err)
			s.True(errs.Is(err, errs.ErrServiceRejection))
			s.False(errs.Is(err, errs.ErrTransportFailure))
			s.True(reservationapi.IsKind(err, reservationapi.KindRejected))
			s.Equal(status, reservationapi.StatusCode(err))
		}
	})

	s.Run("error: canceled context is a transport failure", func() {
		s.stub.SetCreateStatus(http.StatusCreated)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.client.Create(ctx, draft)
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrTransportFailure))
		s.True(reservationapi.IsKind(err, reservationapi.KindTransport))
	})
}

func (s *ClientTestSuite) TestList() {
	s.Run("success: keeps service order", func() {
		s.stub.SetList(http.StatusOK, `[
			{"id":"a","name":"Alice","numberOfPeople":2,"dateTime":"2024-01-01T19:00"},
			{"id":"b","name":"Bob","numberOfPeople":4,"dateTime":"2024-01-01T20:00"}]`)

		got, err := s.client.List(context.Background())
		s.Require().NoError(err)

		expected := []reservation.Booked{
			{ID: "a", Reservation: reservation.Reservation{Name: "Alice", NumberOfPeople: 2, DateTime: "2024-01-01T19:00"}},
			{ID: "b", Reservation: reservation.Reservation{Name: "Bob", NumberOfPeople: 4, DateTime: "2024-01-01T20:00"}},
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			s.T().Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: null body is an empty list", func() {
		s.stub.SetList(http.StatusOK, `null`)

		got, err := s.client.List(context.Background())
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("error: non-2xx is a service rejection", func() {
		s.stub.SetList(http.StatusNotFound, `{"error":"not found"}`)

		got, err := s.client.List(context.Background())
		s.Nil(got)
		s.True(errs.Is(err, errs.ErrServiceRejection))
		s.Equal(http.StatusNotFound, reservationapi.StatusCode(err))
	})

	s.Run("error: malformed body is a transport failure", func() {
		s.stub.SetList(http.StatusOK, `{"not":"an array"}`)

		got, err := s.client.List(context.Background())
		s.Nil(got)
		s.True(errs.Is(err, errs.ErrTransportFailure))
		s.True(reservationapi.IsKind(err, reservationapi.KindMalformed))
	})
}

func TestClientUnreachable(t *testing.T) {
	stub := stubapi.New(t)
	cfg := stub.Config()
	stub.Close()

	client := reservationapi.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := client.Create(context.Background(), reservation.Default())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTransportFailure))

	_, err = client.List(context.Background())
	require.Error(t, err)
	assert.True(t, reservationapi.IsKind(err, reservationapi.KindTransport))
}
