// Package redis stores traced histories and custodian aliases in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
)

// defaultNamespace prefixes every key written by this package.
const defaultNamespace = "origintrace"

// client implements the storage ports of the tracer and the custodian
// registry on top of a single Redis database.
type client struct {
	conn      *redis.Client
	namespace string
}

// Option customizes the connection built by NewClient.
type Option func(*redis.Options, *client)

// WithCredentials authenticates with an ACL user. An empty username falls
// back to the legacy "default" user.
func WithCredentials(username, password string) Option {
	return func(o *redis.Options, _ *client) {
		o.Username = username
		o.Password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(o *redis.Options, _ *client) {
		o.DB = db
	}
}

// WithNamespace overrides the key prefix. Several deployments can share
// one database by using different namespaces.
func WithNamespace(namespace string) Option {
	return func(_ *redis.Options, c *client) {
		c.namespace = strings.TrimSuffix(namespace, ":")
	}
}

// key joins parts under the client namespace.
func (c *client) key(parts ...string) string {
	if c.namespace == "" {
		return strings.Join(parts, ":")
	}
	return c.namespace + ":" + strings.Join(parts, ":")
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr. The connection is checked
// with a PING before returning.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	c := &client{namespace: defaultNamespace}
	redisOpts := &redis.Options{Addr: addr}
	for _, opt := range opts {
		opt(redisOpts, c)
	}

	c.conn = redis.NewClient(redisOpts)
	if err := c.conn.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", addr, errors.Join(err, c.conn.Close()))
	}

	return c, nil
}
