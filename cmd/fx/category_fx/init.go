package category_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(repo repositories.CategoryRepository, log *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(repo, log)
}
