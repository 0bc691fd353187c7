package http

import (
	"rfq-agent/internal/analyzer"
	"rfq-agent/internal/catalog"
	"rfq-agent/internal/model"
	"rfq-agent/internal/rfq"
)

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query"`
}

func (r queryReq) toSubmitInput() rfq.SubmitInput {
	return rfq.SubmitInput{Query: r.Query}
}

func (r queryReq) toClassifyInput() rfq.ClassifyInput {
	return rfq.ClassifyInput{Query: r.Query}
}

// --- Response DTOs ---

// submitResp is the generated RFQ, serialised as is.
type submitResp = model.RfqResult

func (h *handler) newSubmitResp(out rfq.SubmitOutput) submitResp {
	return out.Result
}

type analyzeResp struct {
	IntentType    model.Intent    `json:"intentType"`
	IntentLabel   string          `json:"intentLabel"`
	QuantityMatch bool            `json:"quantityMatch"`
	Scores        analyzer.Scores `json:"scores"`
	Context       model.Context   `json:"context"`
}

func (h *handler) newAnalyzeResp(out rfq.ClassifyOutput) analyzeResp {
	a := out.Analysis
	return analyzeResp{
		IntentType:    a.Intent,
		IntentLabel:   a.IntentLabel,
		QuantityMatch: a.QuantityMatch,
		Scores:        a.Scores,
		Context:       a.Context,
	}
}

type examplesResp struct {
	Categories []catalog.Category `json:"categories"`
	Queries    []string           `json:"queries"`
}

func (h *handler) newExamplesResp(out rfq.ExamplesOutput) examplesResp {
	return examplesResp{
		Categories: out.Examples.Categories,
		Queries:    out.Examples.Queries,
	}
}
