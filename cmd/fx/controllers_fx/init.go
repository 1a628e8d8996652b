package controllers_fx

import (
	"go.uber.org/fx"
	"wanderdex/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewFavoritesController),
	fx.Provide(controllers.NewVisitedController),
	fx.Provide(controllers.NewCountryController),
	fx.Provide(controllers.NewCityController),
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewTagController),
	fx.Provide(controllers.NewPoiImageController))
