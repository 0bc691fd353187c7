package redis

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"rfq-agent/internal/model"
	repo "rfq-agent/internal/rfq/repository"
)

// GetResult reads and decodes a cached result. goredis.Nil is a miss.
func (r *implRepository) GetResult(ctx context.Context, opt repo.GetResultOptions) (model.RfqResult, bool, error) {
	raw, err := r.client.Get(ctx, r.key(opt.Key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.RfqResult{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetResult"), err)
		return model.RfqResult{}, false, repo.ErrFailedToGet
	}

	var result model.RfqResult
	if err := json.Unmarshal(raw, &result); err != nil {
		r.l.Errorf(ctx, "%s: decode %s: %v", r.dsn("GetResult"), opt.Key, err)
		return model.RfqResult{}, false, repo.ErrFailedToDecode
	}
	return result, true, nil
}

// SetResult encodes opt.Result as JSON and stores it with the configured TTL.
func (r *implRepository) SetResult(ctx context.Context, opt repo.SetResultOptions) error {
	raw, err := json.Marshal(opt.Result)
	if err != nil {
		r.l.Errorf(ctx, "%s: encode: %v", r.dsn("SetResult"), err)
		return repo.ErrFailedToSet
	}
	if err := r.client.Set(ctx, r.key(opt.Key), raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetResult"), err)
		return repo.ErrFailedToSet
	}
	return nil
}
