package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"rfq-agent/internal/analyzer"
	"rfq-agent/internal/generator"
	"rfq-agent/internal/middleware"
	rfqHTTP "rfq-agent/internal/rfq/delivery/http"
	"rfq-agent/internal/rfq/repository"
	memoryRepo "rfq-agent/internal/rfq/repository/memory"
	redisRepo "rfq-agent/internal/rfq/repository/redis"
	rfqUC "rfq-agent/internal/rfq/usecase"
)

// setupRFQDomain initializes the rfq domain and registers its routes.
func (srv HTTPServer) setupRFQDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository (optional result cache)
	repo := srv.newResultRepository(ctx)

	// 2. UseCase
	uc := rfqUC.New(srv.l, analyzer.New(srv.catalog), generator.New(srv.catalog), srv.catalog.Examples, repo)

	// 3. HTTP Handler
	h := rfqHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/rfq
	rfqHTTP.RegisterRoutes(api.Group("/rfq"), h, mw)

	srv.l.Infof(ctx, "RFQ domain registered")
	return nil
}

func (srv HTTPServer) newResultRepository(ctx context.Context) repository.Repository {
	switch {
	case !srv.cache.Enabled:
		srv.l.Infof(ctx, "Result cache disabled")
		return nil
	case srv.redis != nil:
		srv.l.Infof(ctx, "Result cache: redis (ttl %s)", srv.cache.TTL)
		return redisRepo.New(srv.redis, srv.redisPrefix, srv.cache.TTL, srv.l)
	default:
		srv.l.Infof(ctx, "Result cache: memory (size %d, ttl %s)", srv.cache.Size, srv.cache.TTL)
		return memoryRepo.New(srv.cache.Size, srv.cache.TTL, srv.l)
	}
}
