package tagsfx

import (
	"go.uber.org/fx"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
)

var Module = fx.Provide(
	repositories.NewTagRepository,
	services.NewTagService,
)
