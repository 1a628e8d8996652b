package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wanderdex/internal/validation"
	"wanderdex/pkg/middleware"
	"wanderdex/pkg/utils"
)

// bindBody decodes any JSON value; shape checks are left to the parsers.
func bindBody(c *gin.Context) (interface{}, bool) {
	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}
	return body, true
}

// pathID parses a uuid path parameter; malformed ids answer notFound.
func pathID(c *gin.Context, param, notFound string) (uuid.UUID, bool) {
	id, err := validation.ParseID(c.Param(param), notFound)
	if err != nil {
		utils.HandleServiceError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

func subjectOf(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}
