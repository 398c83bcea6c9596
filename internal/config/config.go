package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	SheetURL       string
	CategoriesFile string
	LedgerBackend  string

	// CSV backend
	WinningsFile   string
	AllocationFile string

	// Postgres backend
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// Seed pins the random source for a reproducible run. HasSeed is false
	// when RAFFLE_SEED is unset and each run draws fresh randomness.
	Seed    int64
	HasSeed bool

	DryRun bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		SheetURL:          getEnv("SHEET_URL", ""),
		CategoriesFile:    getEnv("CATEGORIES_FILE", DefaultCategoriesFile),
		LedgerBackend:     getEnv("LEDGER_BACKEND", BackendCSV),
		WinningsFile:      getEnv("WINNINGS_FILE", DefaultWinningsFile),
		AllocationFile:    getEnv("ALLOCATION_FILE", DefaultAllocationFile),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "guildraffle"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		ServiceName:       getEnv("SERVICE_NAME", "guild-raffle"),
		Version:           getEnv("VERSION", "dev"),
		Environment:       getEnv("ENVIRONMENT", "development"),
	}

	if dryRunStr := getEnv("DRY_RUN", "false"); dryRunStr != "" {
		dryRun, err := strconv.ParseBool(dryRunStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DRY_RUN value: %w", err)
		}
		cfg.DryRun = dryRun
	}

	if seedStr, exists := os.LookupEnv("RAFFLE_SEED"); exists && seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RAFFLE_SEED value: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an int or returns a
// default value when unset or unparseable
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or
// returns a default value when unset or unparseable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
