// Package storesearch embeds the multilingual product search engine
// in-process, without the HTTP server.
//
//	engine, _ := storesearch.New(
//	    storesearch.WithCatalogFile("catalog.json"),
//	)
//	defer engine.Close()
//
//	resp, _ := engine.Search(ctx, storesearch.Query{Text: "robe été", Locale: "fr"})
//
// The engine scores the catalog with the same normalization, synonym
// expansion, and fuzzy matching the storesearch API serves, and caches
// responses in memory or Redis.
package storesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/heithemdev/rime-couture-sub001/internal/cache/memory"
	cacheRedis "github.com/heithemdev/rime-couture-sub001/internal/cache/redis"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/request"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/result"
	catalogrepo "github.com/heithemdev/rime-couture-sub001/internal/repository/catalog"
	searchuc "github.com/heithemdev/rime-couture-sub001/internal/usecase/search"
)

// Re-exported domain types so embedders never import internal packages.
type (
	Product     = catalog.Product
	Translation = catalog.Translation
	Category    = catalog.Category
	Tag         = catalog.Tag
	Variant     = catalog.Variant
	Size        = catalog.Size
	Color       = catalog.Color
	Response    = result.Response
	Item        = result.Item
)

// Supported locales.
const (
	LocaleEN = catalog.LocaleEN
	LocaleFR = catalog.LocaleFR
	LocaleAR = catalog.LocaleAR
)

const defaultReadinessTimeout = 10 * time.Second

// Query is one search invocation. Zero values take the engine defaults:
// locale en, limit 20, no autocomplete.
type Query struct {
	Text         string
	Locale       string
	Limit        int
	Autocomplete bool
}

type options struct {
	logger        *zap.Logger
	capacity      int
	redisAddrs    []string
	redisUsername string
	redisPassword string
	redisDB       int
	catalogPath   string
	catalogKey    string
	static        []Product
	ttl           time.Duration
	minScore      float64
	minQueryLen   int
	candidateCap  int
}

// Option configures the engine.
type Option func(*options)

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMemoryCacheCapacity bounds the in-process response cache.
func WithMemoryCacheCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithRedis caches responses in Redis instead of process memory. When
// combined with WithCatalogKey the same connection serves the catalog
// snapshot.
func WithRedis(addrs []string, username, password string, db int) Option {
	return func(o *options) {
		o.redisAddrs = addrs
		o.redisUsername = username
		o.redisPassword = password
		o.redisDB = db
	}
}

// WithCatalogFile reads the catalog snapshot from a JSON file.
func WithCatalogFile(path string) Option {
	return func(o *options) { o.catalogPath = path }
}

// WithCatalogKey reads the catalog snapshot from the given Redis key.
// Requires WithRedis.
func WithCatalogKey(key string) Option {
	return func(o *options) { o.catalogKey = key }
}

// WithStaticCatalog serves searches over a fixed product list. Useful
// for tests and small embedded catalogs.
func WithStaticCatalog(products []Product) Option {
	return func(o *options) { o.static = products }
}

// WithCacheTTL overrides the response cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// WithMinScore overrides the relevance floor.
func WithMinScore(s float64) Option {
	return func(o *options) { o.minScore = s }
}

// WithMinQueryLength overrides the query length floor in runes.
func WithMinQueryLength(n int) Option {
	return func(o *options) { o.minQueryLen = n }
}

// WithCandidateCap bounds candidates scored per search.
func WithCandidateCap(n int) Option {
	return func(o *options) { o.candidateCap = n }
}

// Engine is an in-process search engine over a product catalog.
type Engine struct {
	svc   *searchuc.Service
	redis *cacheRedis.Store
}

// New assembles an engine. Exactly one catalog source option is
// required: WithCatalogFile, WithCatalogKey, or WithStaticCatalog.
func New(opts ...Option) (*Engine, error) {
	o := options{
		logger:   zap.NewNop(),
		capacity: memory.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	sources := 0
	for _, set := range []bool{o.catalogPath != "", o.catalogKey != "", o.static != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.New("storesearch: exactly one catalog source option is required")
	}
	if o.catalogKey != "" && len(o.redisAddrs) == 0 {
		return nil, errors.New("storesearch: WithCatalogKey requires WithRedis")
	}

	e := &Engine{}

	var cache searchuc.Cache
	if len(o.redisAddrs) > 0 {
		store, err := cacheRedis.NewStore(cacheRedis.Config{
			Addrs:    o.redisAddrs,
			Username: o.redisUsername,
			Password: o.redisPassword,
			DB:       o.redisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("storesearch: %w", err)
		}
		if err := store.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("storesearch: %w", err)
		}
		e.redis = store
		cache = store
	} else {
		cache = memory.New(o.capacity)
	}

	var source searchuc.CatalogSource
	switch {
	case o.static != nil:
		source = &staticSource{products: o.static}
	case o.catalogPath != "":
		source = catalogrepo.NewFile(o.catalogPath)
	default:
		source = catalogrepo.New(e.redis).WithKey(o.catalogKey)
	}

	svc := searchuc.New(source, cache, o.logger)
	if o.ttl > 0 {
		svc = svc.WithCacheTTL(o.ttl)
	}
	if o.minScore > 0 {
		svc = svc.WithMinScore(o.minScore)
	}
	if o.minQueryLen > 0 {
		svc = svc.WithMinQueryLength(o.minQueryLen)
	}
	if o.candidateCap > 0 {
		svc = svc.WithCandidateCap(o.candidateCap)
	}
	e.svc = svc

	return e, nil
}

// Search runs one query against the catalog.
func (e *Engine) Search(ctx context.Context, q Query) (*Response, error) {
	req, err := request.New(q.Text, q.Locale, q.Limit, q.Autocomplete)
	if err != nil {
		return nil, fmt.Errorf("storesearch: %w", err)
	}
	return e.svc.Search(ctx, &req)
}

// Close releases the Redis connection, if any.
func (e *Engine) Close() {
	if e.redis != nil {
		e.redis.Close()
	}
}

// staticSource serves a fixed in-memory product list.
type staticSource struct {
	products []Product
}

func (s *staticSource) FetchCandidates(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
