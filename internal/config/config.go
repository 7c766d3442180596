package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DevTokenSecret is the signing secret used when TOKEN_SECRET is unset.
// Load refuses it when ENV is "production".
const DevTokenSecret = "fallback-secret-key-for-dev-only"

// Config holds application configuration
type Config struct {
	// Environment: development, test or production
	Env string

	// Server
	Port              string
	CORSAllowedOrigin string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Tokens
	TokenSecret string
	TokenTTL    time.Duration

	// Operator endpoints
	AdminAPIKey string

	// Events
	AMQPURL      string
	AMQPExchange string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		Env: getEnv("ENV", "development"),

		// Server
		Port:              getEnv("PORT", "8080"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "fintrack"),
		DBPassword: getEnv("DB_PASSWORD", "fintrack"),
		DBName:     getEnv("DB_NAME", "fintrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "fintrack.db"),

		// Tokens
		TokenSecret: getEnv("TOKEN_SECRET", DevTokenSecret),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fintrack.events"),
	}

	// Parse token lifetime
	ttlStr := getEnv("TOKEN_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		log.Printf("Warning: invalid TOKEN_TTL value '%s', falling back to 1h\n", ttlStr)
		ttl = time.Hour
	}
	config.TokenTTL = ttl

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

// Validate checks combinations that cannot be fixed with a default.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver)
	}
	if c.TokenSecret == "" {
		return fmt.Errorf("TOKEN_SECRET must not be empty")
	}
	if c.IsProduction() && c.TokenSecret == DevTokenSecret {
		return fmt.Errorf("TOKEN_SECRET must be set in production")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
