package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/models/response_models"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

// FavoritesController and VisitedController share handlers over
// UserPoiServiceInterface and differ only in wording and payload shape.

type FavoritesController struct {
	service services.FavoriteServiceInterface
}

func NewFavoritesController(service services.FavoriteServiceInterface) *FavoritesController {
	return &FavoritesController{service: service}
}

func (f *FavoritesController) List(c *gin.Context) {
	entries, err := f.service.List(c.Request.Context(), subjectOf(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Favorites retrieved successfully", "favorites", entries)
}

func (f *FavoritesController) Add(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseUserPoi(body, "adding favorite")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	subject := subjectOf(c)
	poi, err := f.service.Add(c.Request.Context(), subject, req.PoiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	favorite := response_models.FavoriteResponse{UserID: subject, PoiID: poi.ID}
	utils.RespondSuccess(c, http.StatusCreated, "Favorite added successfully", "favorite", favorite)
}

func (f *FavoritesController) Remove(c *gin.Context) {
	if err := f.service.Remove(c.Request.Context(), subjectOf(c), c.Param("poi_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Favorite removed successfully", "", nil)
}

type VisitedController struct {
	service services.VisitedServiceInterface
}

func NewVisitedController(service services.VisitedServiceInterface) *VisitedController {
	return &VisitedController{service: service}
}

func (v *VisitedController) List(c *gin.Context) {
	entries, err := v.service.List(c.Request.Context(), subjectOf(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Visited POIs retrieved successfully", "visited", entries)
}

func (v *VisitedController) Add(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseUserPoi(body, "adding visited POI")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	poi, err := v.service.Add(c.Request.Context(), subjectOf(c), req.PoiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "POI added to visited list", "poi", poi)
}

func (v *VisitedController) Remove(c *gin.Context) {
	if err := v.service.Remove(c.Request.Context(), subjectOf(c), c.Param("poi_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI removed from visited list", "", nil)
}
