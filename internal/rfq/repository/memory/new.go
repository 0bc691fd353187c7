package memory

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"rfq-agent/internal/model"
	"rfq-agent/internal/rfq/repository"
	"rfq-agent/pkg/log"
)

type implRepository struct {
	results *expirable.LRU[string, model.RfqResult]
	l       log.Logger
}

// New creates an in-process, size and TTL bounded result cache.
func New(size int, ttl time.Duration, l log.Logger) repository.Repository {
	if size <= 0 {
		panic("rfq/repository/memory: size must be positive")
	}
	return &implRepository{
		results: expirable.NewLRU[string, model.RfqResult](size, nil, ttl),
		l:       l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("rfq/repository/memory.%s", method)
}
