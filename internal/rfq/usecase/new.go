package usecase

import (
	"github.com/google/uuid"

	"rfq-agent/internal/analyzer"
	"rfq-agent/internal/catalog"
	"rfq-agent/internal/generator"
	"rfq-agent/internal/rfq"
	"rfq-agent/internal/rfq/repository"
	"rfq-agent/pkg/log"
)

// cacheNamespace scopes result cache keys derived from queries.
var cacheNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("rfq-agent/result-cache"))

// implUseCase is the private implementation of rfq.UseCase.
type implUseCase struct {
	l         log.Logger
	analyzer  analyzer.Analyzer
	generator generator.Generator
	examples  catalog.Examples
	// repo is nil when result caching is disabled.
	repo repository.Repository
}

var _ rfq.UseCase = (*implUseCase)(nil)

// New creates a new rfq UseCase implementation. repo may be nil.
func New(l log.Logger, an analyzer.Analyzer, gen generator.Generator, examples catalog.Examples, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:         l,
		analyzer:  an,
		generator: gen,
		examples:  examples,
		repo:      repo,
	}
}
