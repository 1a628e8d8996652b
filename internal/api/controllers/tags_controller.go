package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

func (tc *TagController) ListAllTagsHandler(c *gin.Context) {
	tags, err := tc.tagService.GetAllTags(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tags retrieved successfully", "tags", tags)
}

func (tc *TagController) GetTag(c *gin.Context) {
	tag, err := tc.tagService.GetTag(c.Request.Context(), c.Param("tag_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tag retrieved successfully", "tag", tag)
}

func (tc *TagController) CreateTags(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	reqs, err := request_models.ParseCreateTags(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	created, err := tc.tagService.CreateTags(c.Request.Context(), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "Tags created successfully", "created", created)
}

func (tc *TagController) UpdateTag(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseUpdateTag(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	tag, err := tc.tagService.UpdateTag(c.Request.Context(), c.Param("tag_name"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tag updated successfully", "tag", tag)
}

func (tc *TagController) DeleteTag(c *gin.Context) {
	if err := tc.tagService.DeleteTag(c.Request.Context(), c.Param("tag_name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Tag deleted successfully", "", nil)
}
