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
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Razorpay   RazorpayConfig
	Credential CredentialConfig
	Notify     NotifyConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// RazorpayConfig carries the gateway credentials. The webhook secret is
// independent from the key secret: server webhook signatures are computed
// with it over the whole raw body, client callback signatures with the
// key secret over "orderID|paymentID".
type RazorpayConfig struct {
	KeyID         string `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	KeySecret     string `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	WebhookSecret string `envconfig:"RAZORPAY_WEBHOOK_SECRET" required:"true"`
	Currency      string `envconfig:"RAZORPAY_CURRENCY" default:"INR"`
}

// CredentialConfig keys the entry-token cipher. Injected at construction
// so the cipher is testable with a deterministic secret.
type CredentialConfig struct {
	TokenSecret string `envconfig:"CREDENTIAL_TOKEN_SECRET" required:"true"`
}

type NotifyConfig struct {
	Channel  string `envconfig:"NOTIFY_CHANNEL" default:"log"` // log | email
	SMTPHost string `envconfig:"NOTIFY_SMTP_HOST" default:"localhost"`
	SMTPPort int    `envconfig:"NOTIFY_SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"NOTIFY_SMTP_USER" default:""`
	SMTPPass string `envconfig:"NOTIFY_SMTP_PASS" default:""`
	From     string `envconfig:"NOTIFY_FROM" default:"bookings@slotbook.local"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "24h",
		},
		Razorpay: RazorpayConfig{
			KeyID:         "rzp_test_key",
			KeySecret:     "test-key-secret",
			WebhookSecret: "test-webhook-secret",
			Currency:      "INR",
		},
		Credential: CredentialConfig{
			TokenSecret: "test-credential-secret",
		},
		Notify: NotifyConfig{
			Channel: "log",
			From:    "bookings@slotbook.local",
		},
	}
}
