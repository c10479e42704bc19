package question_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/internal/config"
	"fyyurtrivia/internal/repositories"
	"fyyurtrivia/internal/services"
)

var Module = fx.Provide(
	provideQuestionRepo, provideQuestionService)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepository {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionService(
	questionRepo repositories.QuestionRepository,
	categoryRepo repositories.CategoryRepository,
	cfg *config.Config,
	log *zap.Logger,
) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo, categoryRepo, cfg.QuestionsPerPage, log)
}
