package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func handleError(c *gin.Context, err error) {
	if apiErr, ok := apierr.As(err); ok {
		c.AbortWithStatusJSON(apiErr.Status, errorResponse{Error: apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: "Not found"})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

// RenderError writes err as a JSON error body. Middleware uses it so every
// failure has the same shape.
func RenderError(c *gin.Context, err error) {
	handleError(c, err)
}
