package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// AppService reports service health.
type AppService interface {
	Status(ctx context.Context) model.Status
	Stats(ctx context.Context) (model.Stats, error)
}

// App handles /status and /stats.
type App struct {
	appService AppService
	logger     *logger.Logger
}

func NewApp(appService AppService, logger *logger.Logger) *App {
	return &App{appService: appService, logger: logger}
}

func (h *App) Status(c *gin.Context) {
	s := h.appService.Status(c.Request.Context())
	c.JSON(http.StatusOK, statusResponse{Redis: s.Redis, DB: s.DB})
}

func (h *App) Stats(c *gin.Context) {
	s, err := h.appService.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, statsResponse{Users: s.Users, Files: s.Files})
}
