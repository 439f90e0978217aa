package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
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

// JWTConfig holds verification settings for access tokens minted by the
// platform auth service.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig tunes the generation batch: how long a single
// attendance/incentive lookup may take, how often it is retried, and how many
// employees are built in parallel.
type PayrollConfig struct {
	UpstreamTimeout  time.Duration
	UpstreamRetries  int
	GenerateParallel int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffdesk-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

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

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("PAYROLL_UPSTREAM_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_UPSTREAM_TIMEOUT: %w", err)
	}
	upstreamRetries, err := strconv.Atoi(getEnv("PAYROLL_UPSTREAM_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_UPSTREAM_RETRIES: %w", err)
	}
	generateParallel, err := strconv.Atoi(getEnv("PAYROLL_GENERATE_PARALLEL", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_GENERATE_PARALLEL: %w", err)
	}

	config.Payroll = PayrollConfig{
		UpstreamTimeout:  upstreamTimeout,
		UpstreamRetries:  upstreamRetries,
		GenerateParallel: generateParallel,
	}

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
	if c.Payroll.UpstreamRetries < 1 {
		return fmt.Errorf("PAYROLL_UPSTREAM_RETRIES must be at least 1")
	}
	if c.Payroll.GenerateParallel < 1 {
		return fmt.Errorf("PAYROLL_GENERATE_PARALLEL must be at least 1")
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
