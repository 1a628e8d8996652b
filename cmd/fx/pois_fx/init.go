package poisfx

import (
	"go.uber.org/fx"
	"wanderdex/internal/models/db_models"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
)

var Module = fx.Provide(
	repositories.NewPOIRepository,
	repositories.NewPoiImageRepository,
	repositories.NewUserPoiRepository[db_models.Favorite],
	repositories.NewUserPoiRepository[db_models.Visited],
	services.NewPoiService,
	services.NewPoiImageService,
	services.NewFavoriteService,
	services.NewVisitedService,
)
