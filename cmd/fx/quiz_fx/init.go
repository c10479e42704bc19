package quiz_fx

import (
	"go.uber.org/fx"

	"fyyurtrivia/internal/services"
)

var Module = fx.Provide(
	services.NewQuizService)
