package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Redis Cache
	RedisURL      string `env:"REDIS_URL" default:"redis://redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL" default:"60"`

	// Review submission
	IPHashSecret   string        `env:"IP_HASH_SECRET" required:"true"`
	ReviewCooldown time.Duration `env:"REVIEW_COOLDOWN" default:"5m"`

	// Admin authentication
	JWTSecret         string        `env:"JWT_SECRET" required:"true"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH" required:"true"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL" default:"1h"`

	// Global request throttle
	ThrottleRPS   float64 `env:"THROTTLE_RPS" default:"50"`
	ThrottleBurst int     `env:"THROTTLE_BURST" default:"100"`

	// Faculty directory dataset
	FacultyDataPath string `env:"FACULTY_DATA_PATH" default:"./data/faculty.json"`

	// Development
	LogLevel  string `env:"LOG_LEVEL" default:"debug"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file from project root
	err := godotenv.Load(".env")
	if err != nil {
		// If .env file doesn't exist, that's OK - we can still use system env vars
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}

	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Database
	if err := loadEnvStringRequired(&config.DatabaseURL, "DATABASE_URL"); err != nil {
		return nil, err
	}

	// Redis
	if err := loadEnvString(&config.RedisURL, "REDIS_URL", "redis://redis:6379"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.RedisPassword, "REDIS_PASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.CacheTTL, "CACHE_TTL", 60); err != nil {
		return nil, err
	}

	// Review submission
	if err := loadEnvStringRequired(&config.IPHashSecret, "IP_HASH_SECRET"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.ReviewCooldown, "REVIEW_COOLDOWN", 5*time.Minute); err != nil {
		return nil, err
	}

	// Admin authentication
	if err := loadEnvStringRequired(&config.JWTSecret, "JWT_SECRET"); err != nil {
		return nil, err
	}
	if err := loadEnvStringRequired(&config.AdminPasswordHash, "ADMIN_PASSWORD_HASH"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.AccessTokenTTL, "ACCESS_TOKEN_TTL", time.Hour); err != nil {
		return nil, err
	}

	// Global request throttle
	if err := loadEnvFloat(&config.ThrottleRPS, "THROTTLE_RPS", 50); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.ThrottleBurst, "THROTTLE_BURST", 100); err != nil {
		return nil, err
	}

	// Faculty directory dataset
	if err := loadEnvString(&config.FacultyDataPath, "FACULTY_DATA_PATH", "./data/faculty.json"); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "debug"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvFloat(target *float64, key string, defaultValue float64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	// The JWT secret signs admin tokens; the IP hash secret keys the client
	// address digest. Both need enough entropy to resist brute force.
	if len(c.JWTSecret) < 32 {
		errors = append(errors, "JWT_SECRET should be at least 32 characters long")
	}
	if len(c.IPHashSecret) < 16 {
		errors = append(errors, "IP_HASH_SECRET should be at least 16 characters long")
	}

	if c.ReviewCooldown <= 0 {
		errors = append(errors, "REVIEW_COOLDOWN must be positive")
	}
	if c.ThrottleRPS <= 0 {
		errors = append(errors, "THROTTLE_RPS must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
