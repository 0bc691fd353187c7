package http

import (
	"github.com/xeipuuv/gojsonschema"

	"rfq-agent/internal/rfq"
	"rfq-agent/pkg/log"
)

type handler struct {
	l           log.Logger
	uc          rfq.UseCase
	querySchema *gojsonschema.Schema
}

// New creates a new HTTP handler for the rfq domain.
func New(l log.Logger, uc rfq.UseCase) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		querySchema: querySchema,
	}
}
