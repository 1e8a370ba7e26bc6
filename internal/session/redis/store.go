package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/files-manager/internal/model"
)

const keyPrefix = "auth_"

var _ model.SessionStore = (*Store)(nil)

// Store keeps session tokens as auth_<token> keys with a TTL.
type Store struct {
	client goredis.Cmdable
}

// NewStore creates a session store on top of a Redis client.
func NewStore(client goredis.Cmdable) *Store {
	return &Store{client: client}
}

func key(token string) string {
	return keyPrefix + token
}

// Set stores token -> userID, expiring after ttl.
func (s *Store) Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(token), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the user bound to token, or model.ErrNotFound if the token is
// unknown or expired.
func (s *Store) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, key(token)).Result()
	if errors.Is(err, goredis.Nil) {
		return uuid.Nil, model.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get session: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed session value: %w", err)
	}

	return userID, nil
}

// Delete removes token. Deleting an unknown token returns model.ErrNotFound.
func (s *Store) Delete(ctx context.Context, token string) error {
	n, err := s.client.Del(ctx, key(token)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
