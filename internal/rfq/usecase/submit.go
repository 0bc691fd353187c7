package usecase

import (
	"context"
	"strings"

	"rfq-agent/internal/rfq"
	"rfq-agent/pkg/metrics"
)

// Submit validates the query and returns its generated RFQ, from the result
// cache when possible.
func (uc *implUseCase) Submit(ctx context.Context, input rfq.SubmitInput) (rfq.SubmitOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		metrics.RFQFailed.WithLabelValues(metrics.ReasonInvalidQuery).Inc()
		return rfq.SubmitOutput{}, rfq.ErrInvalidQuery
	}

	key := uc.cacheKey(input.Query)
	if result, ok := uc.lookup(ctx, key); ok {
		return rfq.SubmitOutput{Result: result, Cached: true}, nil
	}

	result, err := uc.generate(ctx, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit generate: %v", err)
		metrics.RFQFailed.WithLabelValues(metrics.ReasonInternal).Inc()
		return rfq.SubmitOutput{}, rfq.ErrInternal
	}

	uc.store(ctx, key, result)

	return rfq.SubmitOutput{Result: result}, nil
}
