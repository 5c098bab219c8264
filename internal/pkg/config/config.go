package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	DB        DBConfig
	Upstream  UpstreamConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageREST     = "rest"
)

type StorageConfig struct {
	Driver        string        `envconfig:"STORAGE_DRIVER" default:"memory"`
	MemoryLatency time.Duration `envconfig:"MEMORY_LATENCY" default:"0s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"venue"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"venue_booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

// UpstreamConfig points at the external booking REST API used by the rest driver.
type UpstreamConfig struct {
	BaseURL    string        `envconfig:"UPSTREAM_BASE_URL" default:"http://localhost:8000"`
	Timeout    time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
	MaxRetries uint64        `envconfig:"UPSTREAM_MAX_RETRIES" default:"3"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BookingConfig struct {
	// calendar dates and "today" are evaluated in this zone
	TimeZone            string        `envconfig:"APP_TIMEZONE" default:"UTC"`
	SubmitTimeout       time.Duration `envconfig:"BOOKING_SUBMIT_TIMEOUT" default:"10s"`
	SuccessDisplayDelay time.Duration `envconfig:"BOOKING_SUCCESS_DISPLAY_DELAY" default:"2s"`
	SessionIdleTimeout  time.Duration `envconfig:"BOOKING_SESSION_IDLE_TIMEOUT" default:"30m"`
}

type RateLimitConfig struct {
	Rate string `envconfig:"RATE_LIMIT" default:"30-M"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the booking time zone, falling back to UTC on an unknown name.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Booking.SuccessDisplayDelay <= 0 {
		return Config{}, fmt.Errorf("BOOKING_SUCCESS_DISPLAY_DELAY must be positive")
	}
	switch cfg.Storage.Driver {
	case StorageMemory, StoragePostgres, StorageREST:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Booking: BookingConfig{
			TimeZone:            "UTC",
			SubmitTimeout:       time.Second,
			SuccessDisplayDelay: 10 * time.Millisecond,
			SessionIdleTimeout:  time.Minute,
		},
		RateLimit: RateLimitConfig{
			Rate: "1000-M",
		},
	}
}
