package rfq

import (
	"rfq-agent/internal/analyzer"
	"rfq-agent/internal/catalog"
	"rfq-agent/internal/model"
)

// --- UseCase Inputs ---

type SubmitInput struct {
	Query string
}

type ClassifyInput struct {
	Query string
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	Result model.RfqResult
	// Cached is true when Result came from the result cache.
	Cached bool
}

type ClassifyOutput struct {
	Analysis analyzer.Analysis
}

type ExamplesOutput struct {
	Examples catalog.Examples
}
