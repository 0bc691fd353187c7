package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"rfq-agent/internal/model"
	repo "rfq-agent/internal/rfq/repository"
	"rfq-agent/pkg/metrics"
)

// cacheKey derives a stable key from the exact query. The pipeline is a pure
// function of the query, so the untrimmed text is used as is.
func (uc *implUseCase) cacheKey(query string) string {
	return uuid.NewSHA1(cacheNamespace, []byte(query)).String()
}

// lookup returns a cached result. Cache errors are logged and treated as misses.
func (uc *implUseCase) lookup(ctx context.Context, key string) (model.RfqResult, bool) {
	if uc.repo == nil {
		return model.RfqResult{}, false
	}

	result, ok, err := uc.repo.GetResult(ctx, repo.GetResultOptions{Key: key})
	switch {
	case err != nil:
		uc.l.Warnf(ctx, "uc.Submit GetResult: %v", err)
		metrics.CacheLookups.WithLabelValues(metrics.OutcomeError).Inc()
		return model.RfqResult{}, false
	case !ok:
		metrics.CacheLookups.WithLabelValues(metrics.OutcomeMiss).Inc()
		return model.RfqResult{}, false
	default:
		metrics.CacheLookups.WithLabelValues(metrics.OutcomeHit).Inc()
		return result, true
	}
}

func (uc *implUseCase) store(ctx context.Context, key string, result model.RfqResult) {
	if uc.repo == nil {
		return
	}
	if err := uc.repo.SetResult(ctx, repo.SetResultOptions{Key: key, Result: result}); err != nil {
		uc.l.Warnf(ctx, "uc.Submit SetResult: %v", err)
	}
}

// generate runs classify, extract and generate. A panic anywhere in the
// pipeline is reported as an error instead of crashing the request.
func (uc *implUseCase) generate(ctx context.Context, query string) (result model.RfqResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	start := time.Now()
	intent := uc.analyzer.ClassifyIntent(query)
	qctx := uc.analyzer.ExtractContext(query)
	out := uc.generator.Generate(intent, query, qctx)

	metrics.RFQDuration.WithLabelValues(string(intent)).Observe(time.Since(start).Seconds())
	metrics.RFQGenerated.WithLabelValues(string(intent), strconv.FormatBool(out.Matched)).Inc()
	uc.l.Debugf(ctx, "uc.Submit: intent=%s matched=%t keyword=%q items=%d", intent, out.Matched, out.Keyword, len(out.Result.Items))

	return out.Result, nil
}
