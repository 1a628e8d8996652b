package geo_fx

import (
	"go.uber.org/fx"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
)

var Module = fx.Provide(
	repositories.NewCountryRepository,
	repositories.NewCityRepository,
	services.NewCountryService,
	services.NewCityService,
)
