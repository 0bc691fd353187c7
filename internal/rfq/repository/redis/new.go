package redis

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"rfq-agent/internal/rfq/repository"
	"rfq-agent/pkg/log"
)

type implRepository struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed result cache. Values are JSON encoded under
// prefix+key and expire after ttl. A zero ttl keeps them until evicted.
func New(client *goredis.Client, prefix string, ttl time.Duration, l log.Logger) repository.Repository {
	if client == nil {
		panic("rfq/repository/redis: client is required")
	}
	return &implRepository{client: client, prefix: prefix, ttl: ttl, l: l}
}

func (r *implRepository) key(k string) string {
	return r.prefix + k
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("rfq/repository/redis.%s", method)
}
