package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env       string // development or production
	Server    ServerConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	Email     EmailConfig
	Content   ContentConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RateLimitConfig struct {
	Backend string // memory, redis or postgres
	Limit   int
	Window  time.Duration
}

type RedisConfig struct {
	URL string
}

type PostgresConfig struct {
	URL string
}

type EmailConfig struct {
	Provider      string // mailersend, smtp or dev
	FromName      string
	FromEmail     string
	Recipient     string // operator inbox for booking inquiries
	MailerSendKey string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPUseTLS    bool
	SendTimeout   time.Duration
}

type ContentConfig struct {
	ProjectID      string
	Dataset        string
	APIVersion     string
	RequestTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		RateLimit: RateLimitConfig{
			Backend: getEnv("RATE_LIMIT_BACKEND", "memory"),
			Limit:   getInt("RATE_LIMIT_MAX", 5),
			Window:  getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Postgres: PostgresConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Email: EmailConfig{
			Provider:      getEnv("EMAIL_PROVIDER", "mailersend"),
			FromName:      getEnv("EMAIL_FROM_NAME", "Priscilla Life"),
			FromEmail:     getEnv("EMAIL_FROM_ADDRESS", "noreply@priscilla.life"),
			Recipient:     getEnv("CONTACT_EMAIL", ""),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			SMTPHost:      getEnv("SMTP_HOST", "localhost"),
			SMTPPort:      getInt("SMTP_PORT", 1025),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPUseTLS:    getBool("SMTP_USE_TLS", false),
			SendTimeout:   getDuration("EMAIL_SEND_TIMEOUT", 10*time.Second),
		},
		Content: ContentConfig{
			ProjectID:      getEnv("SANITY_PROJECT_ID", ""),
			Dataset:        getEnv("SANITY_DATASET", "production"),
			APIVersion:     getEnv("SANITY_API_VERSION", "2024-01-01"),
			RequestTimeout: getDuration("SANITY_REQUEST_TIMEOUT", 10*time.Second),
		},
	}
}

// Production reports whether the service runs with production error masking.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
