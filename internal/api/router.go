package api

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"wanderdex/internal/api/controllers"
	"wanderdex/internal/config"
	"wanderdex/pkg/middleware"
	"wanderdex/pkg/utils"
)

type RouterParams struct {
	fx.In

	Logger   *zap.Logger
	Config   *config.Config
	Tokens   *utils.TokenManager
	Metrics  *middleware.HTTPMetrics
	Gatherer prometheus.Gatherer

	Accounts  *controllers.AccountController
	Users     *controllers.UserController
	Favorites *controllers.FavoritesController
	Visited   *controllers.VisitedController
	Countries *controllers.CountryController
	Cities    *controllers.CityController
	Pois      *controllers.POIsController
	Tags      *controllers.TagController
	Images    *controllers.PoiImageController
}

func NewRouter(p RouterParams) *gin.Engine {
	if !p.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(ginzap.Ginzap(p.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(p.Logger, true))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))
	r.Use(p.Metrics.Handler())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	RegisterRoutes(r.Group("/api"), p)
	return r
}

func RegisterRoutes(api *gin.RouterGroup, p RouterParams) {
	api.POST("/register", p.Accounts.Register)
	api.POST("/login", p.Accounts.Login)

	auth := api.Group("", middleware.JWTAuthMiddleware(p.Tokens))
	auth.GET("/myProfile", p.Accounts.GetProfile)
	auth.PUT("/myProfile", p.Accounts.UpdateProfile)

	auth.GET("/favorites", p.Favorites.List)
	auth.POST("/favorites", p.Favorites.Add)
	auth.DELETE("/favorites/:poi_id", p.Favorites.Remove)

	auth.GET("/visited", p.Visited.List)
	auth.POST("/visited", p.Visited.Add)
	auth.DELETE("/visited/:poi_id", p.Visited.Remove)

	api.GET("/users", p.Users.ListUsers)
	api.POST("/users", p.Users.AddUser)
	api.DELETE("/users/:user_name", p.Users.DeleteUser)

	countries := api.Group("/countries")
	countries.GET("", p.Countries.ListCountries)
	countries.POST("", p.Countries.CreateCountries)
	countries.GET("/:country_name", p.Countries.GetCountry)
	countries.PUT("/:country_name", p.Countries.UpdateCountry)
	countries.DELETE("/:country_name", p.Countries.DeleteCountry)
	countries.GET("/:country_name/cities", p.Countries.ListCities)

	cities := api.Group("/cities")
	cities.GET("", p.Cities.ListCities)
	cities.POST("", p.Cities.CreateCities)
	cities.GET("/:city_id", p.Cities.GetCity)
	cities.PUT("/:city_id", p.Cities.UpdateCity)
	cities.DELETE("/:city_id", p.Cities.DeleteCity)

	api.GET("/popular-pois", p.Pois.PopularPois)
	pois := api.Group("/pois")
	pois.GET("", p.Pois.ListPois)
	pois.POST("", p.Pois.CreatePois)
	pois.GET("/:poi_id", p.Pois.GetPoiById)
	pois.PUT("/:poi_id", p.Pois.UpdatePoi)
	pois.DELETE("/:poi_id", p.Pois.DeletePoi)
	pois.GET("/:poi_id/tags", p.Pois.ListTags)
	pois.POST("/:poi_id/tags/:tag_name", p.Pois.AddTag)
	pois.DELETE("/:poi_id/tags/:tag_name", p.Pois.RemoveTag)
	pois.GET("/:poi_id/poiimages", p.Pois.ListImages)

	tags := api.Group("/tags")
	tags.GET("", p.Tags.ListAllTagsHandler)
	tags.POST("", p.Tags.CreateTags)
	tags.GET("/:tag_name", p.Tags.GetTag)
	tags.PUT("/:tag_name", p.Tags.UpdateTag)
	tags.DELETE("/:tag_name", p.Tags.DeleteTag)

	images := api.Group("/poiimages")
	images.GET("", p.Images.ListImages)
	images.POST("", p.Images.CreateImages)
	images.GET("/:image_id", p.Images.GetImage)
	images.PUT("/:image_id", p.Images.UpdateImage)
	images.DELETE("/:image_id", p.Images.DeleteImage)
}
