package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port             string
	AppEnv           string
	LogLevel         string
	DBDriver         string
	DatabaseURL      string
	QuestionsPerPage int
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	perPage, err := strconv.Atoi(getEnv("QUESTIONS_PER_PAGE", "10"))
	if err != nil {
		return nil, fmt.Errorf("QUESTIONS_PER_PAGE: %w", err)
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseURL:      getEnv("DATABASE_URL", os.Getenv("POSTGRES_URL")),
		QuestionsPerPage: perPage,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL (or POSTGRES_URL) is required")
	}
	if c.QuestionsPerPage < 1 {
		return errors.New("QUESTIONS_PER_PAGE must be positive")
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
