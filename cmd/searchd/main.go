package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/heithemdev/rime-couture-sub001/internal/cache/memory"
	cacheRedis "github.com/heithemdev/rime-couture-sub001/internal/cache/redis"
	"github.com/heithemdev/rime-couture-sub001/internal/config"
	logpkg "github.com/heithemdev/rime-couture-sub001/internal/logger"
	"github.com/heithemdev/rime-couture-sub001/internal/metrics"
	catalogrepo "github.com/heithemdev/rime-couture-sub001/internal/repository/catalog"
	chiTransport "github.com/heithemdev/rime-couture-sub001/internal/transport/chi"
	searchuc "github.com/heithemdev/rime-couture-sub001/internal/usecase/search"
	"github.com/heithemdev/rime-couture-sub001/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting storesearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// Create the response cache based on driver
	var (
		cache      searchuc.Cache
		redisStore *cacheRedis.Store
	)
	switch cfg.Cache.Driver {
	case "memory":
		cache = memory.New(cfg.Cache.Capacity)
	case "redis":
		redisStore, err = cacheRedis.NewStore(cacheRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create redis cache", zap.Error(err))
		}
		defer redisStore.Close()

		ctx := context.Background()
		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := redisStore.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Redis not ready", zap.Error(err))
		}
		logger.Info("Connected to redis")
		cache = redisStore
	default:
		logger.Fatal("Unknown cache driver", zap.String("driver", cfg.Cache.Driver))
	}

	// Create the catalog source
	var source searchuc.CatalogSource
	switch cfg.Catalog.Source {
	case "redis":
		source = catalogrepo.New(redisStore).WithKey(cfg.Catalog.Key)
	case "file":
		source = catalogrepo.NewFile(cfg.Catalog.Path)
	default:
		logger.Fatal("Unknown catalog source", zap.String("source", cfg.Catalog.Source))
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	searchSvc := searchuc.New(source, cache, logger).
		WithCacheTTL(time.Duration(cfg.Cache.TTLSec) * time.Second).
		WithMinScore(cfg.Search.MinScore).
		WithMinQueryLength(cfg.Search.MinQueryLength).
		WithCandidateCap(cfg.Search.MaxCandidates).
		WithRetry(cfg.Search.Retry.MaxAttempts, time.Duration(cfg.Search.Retry.BaseDelayMs)*time.Millisecond).
		WithMetrics(&searchuc.Metrics{
			CacheTotal:        metrics.SearchCacheTotal,
			Duration:          metrics.SearchDuration,
			CandidatesScanned: metrics.SearchCandidatesScanned,
			FetchRetries:      metrics.CatalogFetchRetriesTotal,
			FetchFailures:     metrics.CatalogFetchFailuresTotal,
		})

	server := chiTransport.NewServer(searchSvc, logger)
	if redisStore != nil {
		server = server.WithCachePinger(redisStore)
	}

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	if cfg.RateLimit.RPS > 0 {
		r.Use(chiTransport.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware())
	}
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
