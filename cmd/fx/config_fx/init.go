package config_fx

import (
	"go.uber.org/fx"

	"fyyurtrivia/internal/config"
	"fyyurtrivia/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideClock)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideClock() utils.Clock {
	return utils.SystemClock
}
