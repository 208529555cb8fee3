package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// EngineConfig seeds the computation engine before a settings row exists.
type EngineConfig struct {
	AutoOvertimeEnabled           bool
	OvertimeThresholdHours        float64
	HolidayOvertimeRateMultiplier float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timesheet"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Engine configuration
	autoOvertime, err := strconv.ParseBool(getEnv("AUTO_OVERTIME_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTO_OVERTIME_ENABLED: %w", err)
	}

	threshold, err := strconv.ParseFloat(getEnv("OVERTIME_THRESHOLD_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_THRESHOLD_HOURS: %w", err)
	}

	holidayMultiplier, err := strconv.ParseFloat(getEnv("HOLIDAY_OVERTIME_RATE_MULTIPLIER", "2.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_OVERTIME_RATE_MULTIPLIER: %w", err)
	}

	config.Engine = EngineConfig{
		AutoOvertimeEnabled:           autoOvertime,
		OvertimeThresholdHours:        threshold,
		HolidayOvertimeRateMultiplier: holidayMultiplier,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Engine.OvertimeThresholdHours <= 0 {
		return fmt.Errorf("OVERTIME_THRESHOLD_HOURS must be positive")
	}
	if c.Engine.HolidayOvertimeRateMultiplier < 1 {
		return fmt.Errorf("HOLIDAY_OVERTIME_RATE_MULTIPLIER must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
