package infra

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqliteDriverName is go-sqlite3 with LOWER replaced by a Unicode-aware
// version, matching postgres for case-insensitive search.
const sqliteDriverName = "sqlite3_unicode"

var registerSQLite sync.Once

func sqliteDialector(dsn string) gorm.Dialector {
	registerSQLite.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", unicodeLower, true)
			},
		})
	})
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: dsn})
}

// unicodeLower leaves NULL and non-text values untouched.
func unicodeLower(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(s)
	}
	return v
}
