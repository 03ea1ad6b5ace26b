// Package search implements the product search engine: query
// normalization and expansion, weighted multi-field scoring, ranking
// with popularity boosts, and the cache + retry wrappers around the
// catalog fetch.
package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/heithemdev/rime-couture-sub001/internal/domain"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/request"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/result"
	"github.com/heithemdev/rime-couture-sub001/internal/synonym"
	"github.com/heithemdev/rime-couture-sub001/internal/text"
)

const cacheKeyPrefix = "search:q:"

// Service defaults.
const (
	DefaultCacheTTL      = 30 * time.Second
	DefaultMinScore      = 0.2
	DefaultMinQueryRunes = 2
	DefaultCandidateCap  = 5000
)

// Metrics holds the Prometheus primitives the service reports into.
// All fields are optional; a nil Metrics disables reporting.
type Metrics struct {
	CacheTotal        *prometheus.CounterVec // label "result": hit/miss
	Duration          prometheus.Observer
	CandidatesScanned prometheus.Observer
	FetchRetries      prometheus.Counter
	FetchFailures     prometheus.Counter
}

// Service executes cached, retried product searches.
type Service struct {
	source   CatalogSource
	cache    Cache
	expander *synonym.Expander
	logger   *zap.Logger
	group    singleflight.Group
	metrics  *Metrics

	ttl           time.Duration
	minScore      float64
	minQueryRunes int
	candidateCap  int
	retry         retryPolicy
}

// New creates a search service with default tuning.
func New(source CatalogSource, c Cache, logger *zap.Logger) *Service {
	return &Service{
		source:        source,
		cache:         c,
		expander:      synonym.New(),
		logger:        logger,
		ttl:           DefaultCacheTTL,
		minScore:      DefaultMinScore,
		minQueryRunes: DefaultMinQueryRunes,
		candidateCap:  DefaultCandidateCap,
		retry:         defaultRetryPolicy,
	}
}

// WithCacheTTL overrides the response cache TTL.
func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.ttl = ttl
	}
	return s
}

// WithMinScore overrides the minimum total score a candidate must reach.
func (s *Service) WithMinScore(minScore float64) *Service {
	if minScore > 0 {
		s.minScore = minScore
	}
	return s
}

// WithMinQueryLength overrides the shortest query (in runes) the engine
// answers with a real search.
func (s *Service) WithMinQueryLength(runes int) *Service {
	if runes > 0 {
		s.minQueryRunes = runes
	}
	return s
}

// WithCandidateCap bounds how many candidates one search may score.
func (s *Service) WithCandidateCap(cap int) *Service {
	if cap > 0 {
		s.candidateCap = cap
	}
	return s
}

// WithRetry overrides the catalog fetch retry policy.
func (s *Service) WithRetry(maxAttempts int, baseDelay time.Duration) *Service {
	if maxAttempts > 0 {
		s.retry.maxAttempts = maxAttempts
	}
	if baseDelay > 0 {
		s.retry.baseDelay = baseDelay
	}
	return s
}

// WithMetrics attaches Prometheus reporting.
func (s *Service) WithMetrics(m *Metrics) *Service {
	s.metrics = m
	return s
}

// Search answers a validated request. Queries below the length floor
// return the defined empty payload without touching the catalog. Cache
// hits replay the stored payload; concurrent identical misses collapse
// into a single computation. A catalog fetch failure is the only error
// surfaced; scoring faults degrade to the "search failed" payload.
func (s *Service) Search(ctx context.Context, req *request.Request) (*result.Response, error) {
	if utf8.RuneCountInString(req.Query()) < s.minQueryRunes {
		return result.Empty(req.Query()), nil
	}

	key := s.cacheKey(req)
	if resp, ok := s.fromCache(ctx, key); ok {
		s.countCache("hit")
		resp.Cached = true
		return resp, nil
	}
	s.countCache("miss")

	v, err, _ := s.group.Do(key, func() (any, error) {
		// A concurrent caller may have populated the cache while we
		// waited for the flight slot.
		if resp, ok := s.fromCache(ctx, key); ok {
			resp.Cached = true
			return resp, nil
		}
		return s.compute(ctx, req, key)
	})
	if err != nil {
		return result.Failure(req.Query()), err
	}
	return v.(*result.Response), nil
}

func (s *Service) compute(
	ctx context.Context, req *request.Request, key string,
) (resp *result.Response, err error) {
	start := time.Now()
	defer func() {
		s.observeDuration(time.Since(start))
		if r := recover(); r != nil {
			s.logger.Error("search computation panicked",
				zap.String("query", req.Query()),
				zap.Any("panic", r),
			)
			resp, err = result.Failure(req.Query()), nil
		}
	}()

	products, fetchErr := s.fetchWithRetry(ctx)
	if fetchErr != nil {
		s.countFetchFailure()
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, fetchErr)
	}

	if len(products) > s.candidateCap {
		s.logger.Warn("candidate set exceeds cap, truncating",
			zap.Int("candidates", len(products)),
			zap.Int("cap", s.candidateCap),
		)
		products = products[:s.candidateCap]
	}
	s.observeScanned(len(products))

	sc := newScoringContext(req.Query(), s.expander)
	scored := s.rankProducts(products, sc)

	total := len(scored)
	if len(scored) > req.Limit() {
		scored = scored[:req.Limit()]
	}

	items := make([]result.Item, 0, len(scored))
	for i := range scored {
		items = append(items, toItem(&scored[i], req.Locale()))
	}

	resp = &result.Response{
		Success: true,
		Query:   req.Query(),
		Results: items,
		Total:   total,
	}
	if req.Autocomplete() {
		resp.Suggestions = buildSuggestions(req.Query(), items)
	}

	s.storeCache(ctx, key, resp)
	return resp, nil
}

// toItem shapes a scored candidate for the requested locale. The same
// fallback chain that fed scoring decides the surfaced text: requested
// locale, default locale, any translation, raw slug.
func toItem(sp *scoredProduct, locale string) result.Item {
	p := sp.product

	name := p.Slug
	description := ""
	if tr, ok := p.Translation(locale); ok {
		if tr.Name != "" {
			name = tr.Name
		}
		description = tr.Description
	}

	return result.Item{
		ID:           p.ID,
		Slug:         p.Slug,
		Name:         name,
		Description:  description,
		CategoryName: categoryName(p.Category, locale),
		Thumbnail:    p.Thumbnail,
		PriceCents:   p.PriceCents,
		Currency:     p.Currency,
		InStock:      p.InStock(),
		Score:        sp.score,
		MatchReasons: sp.reasons,
	}
}

func categoryName(c *catalog.Category, locale string) string {
	if c == nil {
		return ""
	}
	if n := c.Names[locale]; n != "" {
		return n
	}
	if n := c.Names[catalog.DefaultLocale]; n != "" {
		return n
	}
	for _, n := range c.Names {
		if n != "" {
			return n
		}
	}
	return c.Slug
}

// cacheKey builds a deterministic key from the normalized inputs.
func (s *Service) cacheKey(req *request.Request) string {
	raw := fmt.Sprintf("%s|%s|%d|%t",
		text.Normalize(req.Query()), req.Locale(), req.Limit(), req.Autocomplete(),
	)
	h := sha256.Sum256([]byte(raw))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (s *Service) fromCache(ctx context.Context, key string) (*result.Response, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	var resp result.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		s.logger.Warn("failed to decode cached search payload",
			zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &resp, true
}

func (s *Service) storeCache(ctx context.Context, key string, resp *result.Response) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("failed to encode search payload for cache",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("failed to cache search payload",
			zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) countCache(outcome string) {
	if s.metrics != nil && s.metrics.CacheTotal != nil {
		s.metrics.CacheTotal.WithLabelValues(outcome).Inc()
	}
}

func (s *Service) countFetchRetry() {
	if s.metrics != nil && s.metrics.FetchRetries != nil {
		s.metrics.FetchRetries.Inc()
	}
}

func (s *Service) countFetchFailure() {
	if s.metrics != nil && s.metrics.FetchFailures != nil {
		s.metrics.FetchFailures.Inc()
	}
}

func (s *Service) observeDuration(d time.Duration) {
	if s.metrics != nil && s.metrics.Duration != nil {
		s.metrics.Duration.Observe(d.Seconds())
	}
}

func (s *Service) observeScanned(n int) {
	if s.metrics != nil && s.metrics.CandidatesScanned != nil {
		s.metrics.CandidatesScanned.Observe(float64(n))
	}
}
