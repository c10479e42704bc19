package venue_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

var Module = fx.Provide(
	provideVenueRepo, provideVenueService)

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideVenueService(repo repositories.VenueRepository, clock utils.Clock, log *zap.Logger) services.VenueServiceInterface {
	return services.NewVenueService(repo, clock, log)
}
