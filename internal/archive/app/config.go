package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docstash/docstash/pkg/jwtx"
)

type Config struct {
	Issuer    string        // Issuer claim for tokens (default: docstash)
	JWTSecret string        // Required: HS256 shared secret
	TokenTTL  time.Duration // Access token lifetime (default: 72h)

	DatabaseFile string // Path to SQLite database file (default: ./docstash.db)
	PepperFile   string // Path to pepper file for password hashing (default: ./pepper)
	UploadsDir   string // Directory for chunk spools and promoted files (default: ./uploads)

	SMTPHost     string // Outbound mail relay host
	SMTPPort     int    // Outbound mail relay port (default: 587)
	SMTPUsername string // Optional relay credentials
	SMTPPassword string
	MailFrom     string // From address on reset mail (default: no-reply@docstash.local)
	ResetBaseURL string // Front-end reset page the mailed link points at

	InitialRoles []string // Role tags granted to new registrations

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired reset-code sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:    getEnvOrDefault("AUTH_ISSUER", "docstash"),
		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		// The TTL is an explicit duration string ("72h", "30m"); bare
		// integers are read as minutes.
		TokenTTL: getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "docstash.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),
		UploadsDir:   getEnvOrDefault("UPLOADS_DIR", "uploads"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnvOrDefault("MAIL_FROM", "no-reply@docstash.local"),
		ResetBaseURL: getEnvOrDefault("RESET_BASE_URL", "http://localhost:3000/reset-password"),

		InitialRoles: splitRoles(os.Getenv("AUTH_INITIAL_ROLES")),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// splitRoles accepts space or comma separated role tags.
func splitRoles(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
