package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
// Nested keys are separated by a double underscore, e.g. EVENTFINDER_DATABASE__HOST -> database.host.
const EnvPrefix = "EVENTFINDER_"

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `koanf:"host" validate:"required"`
	Port               string `koanf:"port" validate:"required"`
	User               string `koanf:"user" validate:"required"`
	Password           string `koanf:"password"`
	Name               string `koanf:"name" validate:"required"`
	SSLMode            string `koanf:"sslmode"`
	MaxOpenConns       int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns       int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeSec int    `koanf:"conn_max_lifetime_sec" validate:"gte=0"`
}

// MinIOConfig holds object storage settings for the sent-mail archive.
// The archive is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key" validate:"required_with=Endpoint"`
	SecretKey string `koanf:"secret_key" validate:"required_with=Endpoint"`
	Bucket    string `koanf:"bucket" validate:"required_with=Endpoint"`
	UseSSL    bool   `koanf:"use_ssl"`
}

// MailConfig configures the outbound notification gateway.
// From is the process-wide sender identity; callers never supply it.
type MailConfig struct {
	Provider     string `koanf:"provider" validate:"oneof=smtp resend log"`
	From         string `koanf:"from" validate:"required,email"`
	FromName     string `koanf:"from_name"`
	SMTPHost     string `koanf:"smtp_host" validate:"required_if=Provider smtp"`
	SMTPPort     int    `koanf:"smtp_port" validate:"gt=0"`
	SMTPUsername string `koanf:"smtp_username"`
	SMTPPassword string `koanf:"smtp_password"`
	SMTPTLS      string `koanf:"smtp_tls" validate:"oneof=mandatory opportunistic none"`
	ResendAPIKey string `koanf:"resend_api_key" validate:"required_if=Provider resend"`
	TimeoutSec   int    `koanf:"timeout_sec" validate:"gt=0"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level    string `koanf:"level" validate:"oneof=debug info warn error"`
	Format   string `koanf:"format" validate:"oneof=json console"`
	TimeZone string `koanf:"time_zone"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	ServiceName    string         `koanf:"service_name" validate:"required"`
	AppHost        string         `koanf:"app_host"`
	Port           string         `koanf:"port" validate:"required"`
	AllowedOrigins string         `koanf:"allowed_origins"`
	Database       DatabaseConfig `koanf:"database"`
	MinIO          MinIOConfig    `koanf:"minio"`
	Mail           MailConfig     `koanf:"mail"`
	Log            LogConfig      `koanf:"log"`
}

// Default returns the configuration used when no environment variable overrides a value.
func Default() *AppConfig {
	return &AppConfig{
		ServiceName:    "eventfinder",
		AppHost:        "localhost:8080",
		Port:           "8080",
		AllowedOrigins: "http://localhost:3000",
		Database: DatabaseConfig{
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
		},
		Mail: MailConfig{
			Provider:   "log",
			From:       "no-reply@eventfinder.local",
			FromName:   "Event Finder",
			SMTPPort:   587,
			SMTPTLS:    "mandatory",
			TimeoutSec: 15,
		},
		Log: LogConfig{
			Level:    "info",
			Format:   "json",
			TimeZone: "UTC",
		},
	}
}

// Load reads configuration from environment variables on top of Default and validates the result.
// A .env file is loaded by the caller through: _ "github.com/joho/godotenv/autoload"
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envKey maps EVENTFINDER_MAIL__SMTP_HOST to mail.smtp_host.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Origins splits the comma separated AllowedOrigins list.
func (c *AppConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
