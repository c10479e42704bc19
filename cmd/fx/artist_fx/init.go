package artist_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/internal/services"
	"fyyurtrivia/pkg/utils"
)

var Module = fx.Provide(
	provideArtistRepo, provideArtistService)

func provideArtistRepo(db *gorm.DB) repositories.ArtistRepository {
	return repositories.NewArtistRepository(db)
}

func provideArtistService(repo repositories.ArtistRepository, clock utils.Clock, log *zap.Logger) services.ArtistServiceInterface {
	return services.NewArtistService(repo, clock, log)
}
