//go:build unit

package config_test

import (
	"testing"
	"time"

	"table-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "https://striveschool-api.herokuapp.com/api/reservation", cfg.ReservationAPI.CreateURL())
		assert.Equal(t, "https://striveschool-api.herokuapp.com/api/reservation", cfg.ReservationAPI.ListURL())
		assert.Equal(t, 10*time.Second, cfg.ReservationAPI.Timeout)
		assert.False(t, cfg.Draft.SingleFlight)
		assert.Empty(t, cfg.Tracing.OTLPGRPCAddr)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("RESERVATION_API_BASE_URL", "http://localhost:9000/v1")
		t.Setenv("RESERVATION_API_LIST_PATH", "/reservations")
		t.Setenv("RESERVATION_API_TIMEOUT", "1500ms")
		t.Setenv("DRAFT_SINGLE_FLIGHT", "true")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:9000/v1/reservation", cfg.ReservationAPI.CreateURL())
		assert.Equal(t, "http://localhost:9000/v1/reservations", cfg.ReservationAPI.ListURL())
		assert.Equal(t, 1500*time.Millisecond, cfg.ReservationAPI.Timeout)
		assert.True(t, cfg.Draft.SingleFlight)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("RESERVATION_API_TIMEOUT", "soon")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
