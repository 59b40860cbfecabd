package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
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
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds the statutory rates and fixed allowance amounts.
// Kept in configuration so a deployment can override them without a code
// change.
type PayrollConfig struct {
	TransportAllowance       decimal.Decimal
	MealAllowance            decimal.Decimal
	MobileAllowance          decimal.Decimal
	PerformanceAllowance     decimal.Decimal
	PerformanceAttendanceMin int
	PFRate                   decimal.Decimal
	ESIRate                  decimal.Decimal
	OvertimeFallbackFactor   decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional outside development
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
		Name:     getEnv("DB_NAME", "kelolahr-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll rates
	payroll, err := loadPayroll()
	if err != nil {
		return nil, err
	}
	config.Payroll = payroll

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayroll() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	fields := []struct {
		dst      *decimal.Decimal
		key      string
		fallback string
	}{
		{&cfg.TransportAllowance, "PAYROLL_TRANSPORT_ALLOWANCE", "1000"},
		{&cfg.MealAllowance, "PAYROLL_MEAL_ALLOWANCE", "500"},
		{&cfg.MobileAllowance, "PAYROLL_MOBILE_ALLOWANCE", "300"},
		{&cfg.PerformanceAllowance, "PAYROLL_PERFORMANCE_ALLOWANCE", "2000"},
		{&cfg.PFRate, "PAYROLL_PF_RATE", "0.12"},
		{&cfg.ESIRate, "PAYROLL_ESI_RATE", "0.0175"},
		{&cfg.OvertimeFallbackFactor, "PAYROLL_OVERTIME_FALLBACK_FACTOR", "1.5"},
	}
	for _, f := range fields {
		value, err := decimal.NewFromString(getEnv(f.key, f.fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = value
	}

	minAttendance, err := strconv.Atoi(getEnv("PAYROLL_PERFORMANCE_ATTENDANCE_MIN", "95"))
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("invalid PAYROLL_PERFORMANCE_ATTENDANCE_MIN: %w", err)
	}
	cfg.PerformanceAttendanceMin = minAttendance

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
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
