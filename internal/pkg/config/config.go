package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Booking  BookingConfig
	Terminal TerminalConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Berlin"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Berlin"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// FreePoolPolicy decides what happens when the shared free pool grants less
// stock than a prefer-free booking asked for: best-effort charges the
// remainder, strict aborts the whole booking.
type BookingConfig struct {
	FreePoolPolicy string `envconfig:"BOOKING_FREE_POOL_POLICY" default:"best-effort"`
}

const (
	FreePoolBestEffort = "best-effort"
	FreePoolStrict     = "strict"
)

func (c BookingConfig) Validate() error {
	switch c.FreePoolPolicy {
	case FreePoolBestEffort, FreePoolStrict:
		return nil
	default:
		return fmt.Errorf("invalid BOOKING_FREE_POOL_POLICY: %q", c.FreePoolPolicy)
	}
}

// Terminal sessions are PIN-identified on a shared device, so the token life
// doubles as the idle timeout.
type TerminalConfig struct {
	IdleTimeout time.Duration `envconfig:"TERMINAL_IDLE_TIMEOUT" default:"60s"`
}

type MailConfig struct {
	Host            string   `envconfig:"MAIL_HOST" default:"localhost"`
	Port            string   `envconfig:"MAIL_PORT" default:"25"`
	Sender          string   `envconfig:"MAIL_SENDER" default:"kasse@example.org"`
	AlertRecipients []string `envconfig:"MAIL_ALERT_RECIPIENTS" default:"vorstand@example.org"`
	MockMode        bool     `envconfig:"MAIL_MOCK_MODE" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Berlin",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Berlin",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-tests-only",
			Duration: "24h",
		},
		Booking: BookingConfig{
			FreePoolPolicy: FreePoolBestEffort,
		},
		Terminal: TerminalConfig{
			IdleTimeout: 60 * time.Second,
		},
		Mail: MailConfig{
			Sender:          "kasse@example.org",
			AlertRecipients: []string{"vorstand@example.org"},
			MockMode:        true,
		},
	}
}
