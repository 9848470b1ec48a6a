package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Policy     PolicyConfig
	Annotation AnnotationConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Workers  int
}

// PolicyConfig holds the pay-week computation rules. Defaults match the
// standard 8.5h shift with a 44h weekly overtime threshold.
type PolicyConfig struct {
	ExpectedDailyMinutes     int
	LunchDeductionMinutes    int
	ShortShiftCutoffMinutes  int
	PaidBreakMinutes         int
	MismatchToleranceMinutes int
	EarliestNormalClockHour  int
	LatestNormalClockHour    int
	WeeklyOvertimeThreshold  int
}

// AnnotationConfig holds settings for the optional audit-note generator.
type AnnotationConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	Timeout time.Duration
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

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
		Name:     getEnv("DB_NAME", "wagewise-payweek"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	workers, err := strconv.Atoi(getEnv("ENGINE_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENGINE_WORKERS: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Workers:  workers,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Pay-week policy configuration
	policy := PolicyConfig{}
	policyFields := []struct {
		dst      *int
		key      string
		fallback string
	}{
		{&policy.ExpectedDailyMinutes, "PAYWEEK_EXPECTED_DAILY_MINUTES", "510"},
		{&policy.LunchDeductionMinutes, "PAYWEEK_LUNCH_DEDUCTION_MINUTES", "30"},
		{&policy.ShortShiftCutoffMinutes, "PAYWEEK_SHORT_SHIFT_CUTOFF_MINUTES", "300"},
		{&policy.PaidBreakMinutes, "PAYWEEK_PAID_BREAK_MINUTES", "30"},
		{&policy.MismatchToleranceMinutes, "PAYWEEK_MISMATCH_TOLERANCE_MINUTES", "15"},
		{&policy.EarliestNormalClockHour, "PAYWEEK_EARLIEST_NORMAL_CLOCK_HOUR", "5"},
		{&policy.LatestNormalClockHour, "PAYWEEK_LATEST_NORMAL_CLOCK_HOUR", "10"},
		{&policy.WeeklyOvertimeThreshold, "PAYWEEK_WEEKLY_OVERTIME_THRESHOLD_MINUTES", "2640"},
	}
	for _, f := range policyFields {
		v, err := strconv.Atoi(getEnv(f.key, f.fallback))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = v
	}
	config.Policy = policy

	// Annotation configuration
	annotationTimeout, err := time.ParseDuration(getEnv("ANNOTATION_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANNOTATION_TIMEOUT: %w", err)
	}

	config.Annotation = AnnotationConfig{
		Enabled: getEnv("ANNOTATION_ENABLED", "false") == "true",
		APIKey:  getEnv("ANNOTATION_API_KEY", ""),
		Model:   getEnv("ANNOTATION_MODEL", "gpt-4o-mini"),
		Timeout: annotationTimeout,
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.App.Workers < 1 {
		return fmt.Errorf("ENGINE_WORKERS must be at least 1")
	}
	if c.Annotation.Enabled && c.Annotation.APIKey == "" {
		return fmt.Errorf("ANNOTATION_API_KEY is required when ANNOTATION_ENABLED=true")
	}
	if c.Policy.ExpectedDailyMinutes <= 0 {
		return fmt.Errorf("PAYWEEK_EXPECTED_DAILY_MINUTES must be positive")
	}
	if c.Policy.WeeklyOvertimeThreshold <= 0 {
		return fmt.Errorf("PAYWEEK_WEEKLY_OVERTIME_THRESHOLD_MINUTES must be positive")
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
