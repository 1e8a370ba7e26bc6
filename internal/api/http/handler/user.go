package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// UserService registers users.
type UserService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
}

// User handles POST /users.
type User struct {
	userService UserService
	logger      *logger.Logger
}

func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{userService: userService, logger: logger}
}

func (h *User) Register(c *gin.Context) {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		h.logger.Debug("User handler: unreadable body",
			"error", err.Error())
		handleError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}
