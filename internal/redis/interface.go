package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is an
// interface so tests can point it at miniredis.
type Client interface {
	redis.Cmdable
	Close() error
}
