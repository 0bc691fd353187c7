package memory

import (
	"context"

	"rfq-agent/internal/model"
	repo "rfq-agent/internal/rfq/repository"
)

// GetResult returns a copy of the cached result so callers can edit it freely.
func (r *implRepository) GetResult(ctx context.Context, opt repo.GetResultOptions) (model.RfqResult, bool, error) {
	result, ok := r.results.Get(opt.Key)
	if !ok {
		return model.RfqResult{}, false, nil
	}
	r.l.Debugf(ctx, "%s: hit %s", r.dsn("GetResult"), opt.Key)
	return result.Clone(), true, nil
}

// SetResult stores a copy of opt.Result.
func (r *implRepository) SetResult(ctx context.Context, opt repo.SetResultOptions) error {
	r.results.Add(opt.Key, opt.Result.Clone())
	return nil
}
