package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

type PoiImageController struct {
	imageService services.PoiImageServiceInterface
}

func NewPoiImageController(imageService services.PoiImageServiceInterface) *PoiImageController {
	return &PoiImageController{imageService: imageService}
}

func (pc *PoiImageController) ListImages(c *gin.Context) {
	images, err := pc.imageService.ListImages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI images retrieved successfully", "images", images)
}

func (pc *PoiImageController) GetImage(c *gin.Context) {
	id, ok := pathID(c, "image_id", "POI image not found")
	if !ok {
		return
	}
	image, err := pc.imageService.GetImage(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI image retrieved successfully", "image", image)
}

func (pc *PoiImageController) CreateImages(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	reqs, err := request_models.ParseCreatePoiImages(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	created, err := pc.imageService.CreateImages(c.Request.Context(), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "POI images created successfully", "created", created)
}

func (pc *PoiImageController) UpdateImage(c *gin.Context) {
	id, ok := pathID(c, "image_id", "POI image not found")
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseUpdatePoiImage(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	image, err := pc.imageService.UpdateImage(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI image updated successfully", "image", image)
}

func (pc *PoiImageController) DeleteImage(c *gin.Context) {
	id, ok := pathID(c, "image_id", "POI image not found")
	if !ok {
		return
	}
	if err := pc.imageService.DeleteImage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "POI image deleted successfully", "", nil)
}
