package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe default
// - default: Values common across all environments (timeouts, paths, formats)
// -----------------------------------------------------------------------------

type Config struct {
	Server         ServerConfig
	ReservationAPI ReservationAPIConfig
	Draft          DraftConfig
	Session        SessionConfig
	CORS           CORSConfig
	Log            LogConfig
	Tracing        TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type ReservationAPIConfig struct {
	BaseURL    string        `envconfig:"RESERVATION_API_BASE_URL" default:"https://striveschool-api.herokuapp.com/api"`
	CreatePath string        `envconfig:"RESERVATION_API_CREATE_PATH" default:"/reservation"`
	ListPath   string        `envconfig:"RESERVATION_API_LIST_PATH" default:"/reservation"`
	Timeout    time.Duration `envconfig:"RESERVATION_API_TIMEOUT" default:"10s"`
}

type DraftConfig struct {
	// rejects a second submit while one is outstanding
	SingleFlight bool `envconfig:"DRAFT_SINGLE_FLIGHT" default:"false"`
}

type SessionConfig struct {
	// zero keeps sessions until they are closed
	IdleTTL time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Rome"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type TracingConfig struct {
	// empty disables export
	OTLPGRPCAddr string `envconfig:"OTEL_OTLP_GRPC_ADDR"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"table-booking"`
}

func (c ReservationAPIConfig) CreateURL() string {
	return c.BaseURL + c.CreatePath
}

func (c ReservationAPIConfig) ListURL() string {
	return c.BaseURL + c.ListPath
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		ReservationAPI: ReservationAPIConfig{
			BaseURL:    "http://127.0.0.1:0/api",
			CreatePath: "/reservation",
			ListPath:   "/reservation",
			Timeout:    2 * time.Second,
		},
		Session: SessionConfig{
			IdleTTL: 30 * time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Rome",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Tracing: TracingConfig{
			ServiceName: "table-booking-test",
		},
	}
}
