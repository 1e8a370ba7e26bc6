package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// AuthService issues and revokes session tokens.
type AuthService interface {
	Login(ctx context.Context, authorization string) (string, error)
	Logout(ctx context.Context, token string) error
	GetCurrentUser(ctx context.Context, token string) (model.User, error)
}

// Auth handles /connect, /disconnect and /users/me.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Connect exchanges Basic credentials for a token.
func (h *Auth) Connect(c *gin.Context) {
	token, err := h.authService.Login(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Disconnect revokes the request's token.
func (h *Auth) Disconnect(c *gin.Context) {
	token, ok := h.contextManager.GetTokenFromContext(c.Request.Context())
	if !ok {
		handleError(c, apierr.NewErrUnauthorized())
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user.
func (h *Auth) Me(c *gin.Context) {
	token, ok := h.contextManager.GetTokenFromContext(c.Request.Context())
	if !ok {
		handleError(c, apierr.NewErrUnauthorized())
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), token)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
