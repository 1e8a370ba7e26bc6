// Package redisconn opens the Redis client shared by the session store and
// the job queue.
package redisconn

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Options contains Redis connection parameters.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connection wraps a go-redis client.
type Connection struct {
	*redis.Client
}

// NewConnection creates a client and verifies the server answers PING.
func NewConnection(ctx context.Context, opts Options) (*Connection, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return &Connection{Client: client}, nil
}

// Ping reports whether the server is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if c.Client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.Client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (c *Connection) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}
