package config_fx

import (
	"go.uber.org/fx"

	"rumbo/internal/config"
)

var Module = fx.Provide(config.Load)
