package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

// RespondSuccess writes {status, code, message, trace_id, <key>: data}.
// An empty key omits the payload.
func RespondSuccess(c *gin.Context, code int, message string, key string, data interface{}) {
	body := gin.H{
		"status":  "success",
		"code":    code,
		"message": message,
	}
	if traceID := traceIDOf(c); traceID != "" {
		body["trace_id"] = traceID
	}
	if key != "" {
		body[key] = data
	}
	c.JSON(code, body)
}

func RespondError(c *gin.Context, code int, message string) {
	body := gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	}
	if traceID := traceIDOf(c); traceID != "" {
		body["trace_id"] = traceID
	}
	c.JSON(code, body)
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrConflict):
		RespondError(c, http.StatusBadRequest, MessageOf(err))
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, MessageOf(err))
	case errors.Is(err, ErrAuthenticationFailed):
		RespondError(c, http.StatusUnauthorized, MessageOf(err))
	case errors.Is(err, ErrUnexpected):
		RespondError(c, http.StatusInternalServerError, MessageOf(err))
	default:
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
