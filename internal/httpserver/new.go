package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"rfq-agent/config"
	"rfq-agent/internal/catalog"
	"rfq-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// RFQ domain
	catalog     *catalog.Catalog
	cache       config.CacheConfig
	redis       *goredis.Client
	redisPrefix string
	rateLimit   config.RateLimitConfig
	metrics     bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Catalog defaults to catalog.Default().
	Catalog *catalog.Catalog
	Cache   config.CacheConfig
	// Redis, when set, backs the result cache instead of the in-process LRU.
	Redis          *goredis.Client
	RedisKeyPrefix string
	RateLimit      config.RateLimitConfig
	MetricsEnabled bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		catalog:     cat,
		cache:       cfg.Cache,
		redis:       cfg.Redis,
		redisPrefix: cfg.RedisKeyPrefix,
		rateLimit:   cfg.RateLimit,
		metrics:     cfg.MetricsEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
