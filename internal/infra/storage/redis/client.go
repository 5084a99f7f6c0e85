// Package redis provides the Redis-backed query cache.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces cache keys when no prefix is configured.
const DefaultKeyPrefix = "fantoken"

type config struct {
	username  string
	password  string
	db        int
	keyPrefix string
}

type Option func(*config)

// WithCredentials authenticates with an ACL username and password.
func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithKeyPrefix namespaces every key so several deployments can share one
// Redis database. Empty prefixes are ignored.
func WithKeyPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.keyPrefix = prefix
		}
	}
}

type client struct {
	conn      *redis.Client
	keyPrefix string
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis at addr and checks the connection with a PING.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{keyPrefix: DefaultKeyPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", addr, err)
	}

	return newClient(conn, cfg.keyPrefix), nil
}

func newClient(conn *redis.Client, keyPrefix string) *client {
	return &client{
		conn:      conn,
		keyPrefix: keyPrefix,
	}
}
