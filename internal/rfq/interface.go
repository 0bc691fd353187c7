package rfq

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit runs the full classify, extract and generate pipeline.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)
	// Classify stops after intent and context extraction.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
	Examples(ctx context.Context) (ExamplesOutput, error)
}
