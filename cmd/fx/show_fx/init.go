package show_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/internal/services"
)

var Module = fx.Provide(
	provideShowRepo, services.NewShowService)

func provideShowRepo(db *gorm.DB) repositories.ShowRepository {
	return repositories.NewShowRepository(db)
}
