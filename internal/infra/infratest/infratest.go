// Package infratest opens throwaway sqlite stores for tests.
package infratest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/config"
	"fyyurtrivia/internal/infra"
)

// OpenSQLite returns a migrated sqlite database in t.TempDir with foreign
// keys enforced. It is closed when the test ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		AppEnv:      "test",
		LogLevel:    "error",
		DBDriver:    config.DriverSQLite,
		DatabaseURL: filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on",
	}
	log := zap.NewNop()

	db, err := infra.OpenDatabase(cfg, log)
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	t.Cleanup(func() { infra.CloseDatabase(db, log) })
	return db
}
