package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "APP_ENV", "LOG_LEVEL", "DB_DRIVER", "DATABASE_URL", "POSTGRES_URL", "QUESTIONS_PER_PAGE"} {
		t.Setenv(key, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/trivia")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 10, cfg.QuestionsPerPage)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFallsBackToPostgresURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_URL", "postgres://legacy/trivia")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "postgres://legacy/trivia", cfg.DatabaseURL)
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to "".
	for _, key := range []string{"DB_DRIVER", "DATABASE_URL", "QUESTIONS_PER_PAGE"} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() {
		for _, key := range []string{"DB_DRIVER", "DATABASE_URL", "QUESTIONS_PER_PAGE"} {
			_ = os.Unsetenv(key)
		}
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=SQLite\nDATABASE_URL=trivia.db\nQUESTIONS_PER_PAGE=5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "trivia.db", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.QuestionsPerPage)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{}},
		{"unknown driver", map[string]string{"DATABASE_URL": "x", "DB_DRIVER": "mysql"}},
		{"non-numeric page size", map[string]string{"DATABASE_URL": "x", "QUESTIONS_PER_PAGE": "ten"}},
		{"zero page size", map[string]string{"DATABASE_URL": "x", "QUESTIONS_PER_PAGE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}
