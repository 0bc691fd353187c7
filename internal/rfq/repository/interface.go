package repository

import (
	"context"

	"rfq-agent/internal/model"
)

// Repository is the composed interface for the rfq domain data store.
type Repository interface {
	ResultRepository
}

// ResultRepository caches generated results by query key.
type ResultRepository interface {
	// GetResult reports ok=false on a miss. A miss is not an error.
	GetResult(ctx context.Context, opt GetResultOptions) (model.RfqResult, bool, error)
	SetResult(ctx context.Context, opt SetResultOptions) error
}
