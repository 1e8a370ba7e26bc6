package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/api/http/handler"
	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// TokenHeader carries the session token.
const TokenHeader = "X-Token"

// SessionResolver maps a session token to its user.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate resolves X-Token and stores the user ID and token on the
// request context.
type Authenticate struct {
	sessions       SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, contextManager: contextManager, logger: logger}
}

// Required rejects requests without a live session.
func (m *Authenticate) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)

		userID, err := m.sessions.ResolveSession(c.Request.Context(), token)
		if err != nil {
			handler.RenderError(c, err)
			return
		}

		m.attach(c, userID, token)
		c.Next()
	}
}

// Optional attaches the user when a live session is presented and lets
// anonymous requests through otherwise.
func (m *Authenticate) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.Next()
			return
		}

		userID, err := m.sessions.ResolveSession(c.Request.Context(), token)
		switch {
		case err == nil:
			m.attach(c, userID, token)
		case !apierr.IsKind(err, apierr.KindAuth):
			handler.RenderError(c, err)
			return
		default:
			m.logger.Debug("Authenticate: ignoring stale token on optional route",
				"path", c.FullPath())
		}

		c.Next()
	}
}

func (m *Authenticate) attach(c *gin.Context, userID uuid.UUID, token string) {
	ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), userID)
	ctx = m.contextManager.SetTokenToContext(ctx, token)
	c.Request = c.Request.WithContext(ctx)
}
