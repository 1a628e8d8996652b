package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

// ListPois godoc
// @Summary List POIs
// @Description All query parameters are optional and combine with AND.
// @Tags POIs
// @Produce json
// @Param name query string false "case-insensitive name substring"
// @Param tag_name query string false "exact tag name"
// @Param country_name query string false "exact country name"
// @Param city_name query string false "exact city name"
// @Param season query string false "exact city season"
// @Router /pois [get]
func (pc *POIsController) ListPois(c *gin.Context) {
	filter := repositories.PoiFilter{
		Name:        c.Query("name"),
		TagName:     c.Query("tag_name"),
		CountryName: c.Query("country_name"),
		CityName:    c.Query("city_name"),
		Season:      c.Query("season"),
	}
	pois, err := pc.poiService.ListPois(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POIs retrieved successfully", "pois", pois)
}

func (pc *POIsController) PopularPois(c *gin.Context) {
	pois, err := pc.poiService.PopularPois(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Popular POIs retrieved successfully", "pois", pois)
}

func (pc *POIsController) GetPoiById(c *gin.Context) {
	id, ok := pathID(c, "poi_id", "Point of interest not found")
	if !ok {
		return
	}
	poi, err := pc.poiService.GetPOIById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI retrieved successfully", "poi", poi)
}

func (pc *POIsController) CreatePois(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	reqs, err := request_models.ParseCreatePois(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	created, err := pc.poiService.CreatePois(c.Request.Context(), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "POIs created successfully", "created", created)
}

func (pc *POIsController) UpdatePoi(c *gin.Context) {
	id, ok := pathID(c, "poi_id", "POI not found")
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseUpdatePoi(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	poi, err := pc.poiService.UpdatePoi(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI updated successfully", "poi", poi)
}

func (pc *POIsController) DeletePoi(c *gin.Context) {
	id, ok := pathID(c, "poi_id", "POI not found")
	if !ok {
		return
	}
	if err := pc.poiService.DeletePoi(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI deleted successfully", "", nil)
}

func (pc *POIsController) ListTags(c *gin.Context) {
	id, ok := pathID(c, "poi_id", "POI not found")
	if !ok {
		return
	}
	tags, err := pc.poiService.TagsOfPoi(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tags retrieved successfully", "tags", tags)
}

func (pc *POIsController) ListImages(c *gin.Context) {
	id, ok := pathID(c, "poi_id", "POI not found")
	if !ok {
		return
	}
	images, err := pc.poiService.ImagesOfPoi(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI images retrieved successfully", "images", images)
}

func (pc *POIsController) AddTag(c *gin.Context) {
	id, ok := pathID(c, "poi_id", "POI not found")
	if !ok {
		return
	}
	if err := pc.poiService.AddTagToPoi(c.Request.Context(), id, c.Param("tag_name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tag added to POI", "", nil)
}

func (pc *POIsController) RemoveTag(c *gin.Context) {
	id, ok := pathID(c, "poi_id", "POI not found")
	if !ok {
		return
	}
	if err := pc.poiService.RemoveTagFromPoi(c.Request.Context(), id, c.Param("tag_name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tag removed from POI", "", nil)
}
