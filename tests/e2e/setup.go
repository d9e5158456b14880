//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"table-booking/cmd/bootstrap"
	"table-booking/cmd/bootstrap/components"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/session"
	"table-booking/tests/common/stubapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-suite setup: the real fx graph wired to a stub reservation service
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*stubapi.Server, *gin.Engine, *session.Registry, config.Config) {
	gin.SetMode(gin.TestMode)

	stub := stubapi.New(t)
	cfg := config.NewTestConfig()
	cfg.ReservationAPI = stub.Config()

	router, registry, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx app", "error", err.Error())
		}
	})

	return stub, router, registry, cfg
}

func buildE2EApp(cfg config.Config) (*gin.Engine, *session.Registry, *fx.App) {
	var (
		router   *gin.Engine
		registry *session.Registry
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			func() config.ReservationAPIConfig { return cfg.ReservationAPI },
			func() config.DraftConfig { return cfg.Draft },
			func() config.SessionConfig { return cfg.Session },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.TracingModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &registry),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, registry, app
}

// ------------------------------------------------------------
// Shared suite for e2e tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Stub     *stubapi.Server
	Registry *session.Registry
	Config   config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	stub, router, registry, cfg := setupE2EEnvironment(t)
	s.Stub = stub
	s.Router = router
	s.Registry = registry
	s.Config = cfg
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) TearDownTest() {
	s.Registry.CloseAll()
	s.Stub.SetCreateStatus(200)
}
