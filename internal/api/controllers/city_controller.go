package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{cityService: cityService}
}

// ListCities filters by season, country_name and a name substring.
func (cc *CityController) ListCities(c *gin.Context) {
	filter := repositories.CityFilter{
		Name:        c.Query("name"),
		Season:      c.Query("season"),
		CountryName: c.Query("country_name"),
	}
	cities, err := cc.cityService.ListCities(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Cities retrieved successfully", "cities", cities)
}

func (cc *CityController) GetCity(c *gin.Context) {
	id, ok := pathID(c, "city_id", "City not found")
	if !ok {
		return
	}
	city, err := cc.cityService.GetCity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "City retrieved successfully", "city", city)
}

func (cc *CityController) CreateCities(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	reqs, err := request_models.ParseCreateCities(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	created, err := cc.cityService.CreateCities(c.Request.Context(), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Cities created successfully", "created", created)
}

func (cc *CityController) UpdateCity(c *gin.Context) {
	id, ok := pathID(c, "city_id", "City not found")
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseUpdateCity(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	city, err := cc.cityService.UpdateCity(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "City updated successfully", "city", city)
}

func (cc *CityController) DeleteCity(c *gin.Context) {
	id, ok := pathID(c, "city_id", "City not found")
	if !ok {
		return
	}
	if err := cc.cityService.DeleteCity(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "City deleted successfully", "", nil)
}
