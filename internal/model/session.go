package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionDuration is the TTL for authenticated sessions.
const DefaultSessionDuration = 24 * time.Hour

// SessionStore maps opaque auth tokens to user IDs with expiration.
type SessionStore interface {
	Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}
