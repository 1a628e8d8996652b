package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

type CountryController struct {
	countryService services.CountryServiceInterface
}

func NewCountryController(countryService services.CountryServiceInterface) *CountryController {
	return &CountryController{countryService: countryService}
}

func (cc *CountryController) ListCountries(c *gin.Context) {
	filter := repositories.CountryFilter{Name: c.Query("name")}
	countries, err := cc.countryService.ListCountries(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Countries retrieved successfully", "countries", countries)
}

func (cc *CountryController) GetCountry(c *gin.Context) {
	country, err := cc.countryService.GetCountry(c.Request.Context(), c.Param("country_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Country retrieved successfully", "country", country)
}

func (cc *CountryController) ListCities(c *gin.Context) {
	cities, err := cc.countryService.ListCitiesOfCountry(c.Request.Context(), c.Param("country_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Cities retrieved successfully", "cities", cities)
}

func (cc *CountryController) CreateCountries(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	reqs, err := request_models.ParseCreateCountries(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	created, err := cc.countryService.CreateCountries(c.Request.Context(), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Countries created successfully", "created", created)
}

func (cc *CountryController) UpdateCountry(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseUpdateCountry(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	country, err := cc.countryService.UpdateCountry(c.Request.Context(), c.Param("country_name"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Country updated successfully", "country", country)
}

func (cc *CountryController) DeleteCountry(c *gin.Context) {
	if err := cc.countryService.DeleteCountry(c.Request.Context(), c.Param("country_name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Country deleted successfully", "", nil)
}
