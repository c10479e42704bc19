package controllers_fx

import (
	"go.uber.org/fx"

	"fyyurtrivia/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewQuestionController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewHomeController),
	fx.Provide(controllers.NewVenueController),
	fx.Provide(controllers.NewArtistController),
	fx.Provide(controllers.NewShowController))
