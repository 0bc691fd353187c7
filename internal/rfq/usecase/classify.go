package usecase

import (
	"context"
	"strings"

	"rfq-agent/internal/rfq"
)

// Classify returns the intent and context of a query without generating items.
func (uc *implUseCase) Classify(ctx context.Context, input rfq.ClassifyInput) (out rfq.ClassifyOutput, err error) {
	if strings.TrimSpace(input.Query) == "" {
		return rfq.ClassifyOutput{}, rfq.ErrInvalidQuery
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.Classify: panic: %v", r)
			out, err = rfq.ClassifyOutput{}, rfq.ErrInternal
		}
	}()

	return rfq.ClassifyOutput{Analysis: uc.analyzer.Analyze(input.Query)}, nil
}

// Examples returns the landing-page categories and sample queries.
func (uc *implUseCase) Examples(ctx context.Context) (rfq.ExamplesOutput, error) {
	return rfq.ExamplesOutput{Examples: uc.examples}, nil
}
