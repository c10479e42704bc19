package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fyyurtrivia/internal/config"
	"fyyurtrivia/internal/models/db_models"
)

// OpenDatabase connects to the configured store. Postgres is the production
// target; sqlite backs local runs and the test suite.
func OpenDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	case config.DriverSQLite:
		dialector = sqliteDialector(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	level := logger.Warn
	if cfg.IsDevelopment() {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	log.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Category{},
		&db_models.Question{},
		&db_models.Genre{},
		&db_models.Venue{},
		&db_models.Artist{},
		&db_models.Show{},
	)
}

func CloseDatabase(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("get database handle", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Warn("close database", zap.Error(err))
	} else {
		log.Info("database connection closed")
	}
}
