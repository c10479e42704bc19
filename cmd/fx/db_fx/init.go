package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/config"
	"fyyurtrivia/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return infra.AutoMigrate(db)
		},
		OnStop: func(context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})
	return db, nil
}
