package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/request"
)

// --- Mocks ---

type mockSource struct {
	mu       sync.Mutex
	products []catalog.Product
	errs     []error // consumed one per call; nil entry means success
	calls    int
}

func (m *mockSource) FetchCandidates(_ context.Context) ([]catalog.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if len(m.errs) > 0 {
		err := m.errs[0]
		m.errs = m.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return m.products, nil
}

func (m *mockSource) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string][]byte)}
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.entries[key]
	if !ok {
		return nil, errKeyMissing
	}
	return data, nil
}

func (m *mockCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = value
	m.sets++
	return nil
}

// The service treats any Get error as a miss.
var errKeyMissing = errors.New("key not found")

// --- Fixtures ---

func newTestService(source CatalogSource, cache Cache) *Service {
	return New(source, cache, zap.NewNop()).WithRetry(3, time.Millisecond)
}

func makeRequest(t *testing.T, query string) *request.Request {
	t.Helper()
	r, err := request.New(query, catalog.LocaleEN, 20, false)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

func floralDress() catalog.Product {
	return catalog.Product{
		ID:   "p-floral",
		Slug: "floral-summer-dress",
		Translations: []catalog.Translation{
			{Locale: "en", Name: "Floral Summer Dress", Description: "A light cotton dress with a floral print."},
			{Locale: "fr", Name: "Robe Fleurie", Description: "Une robe légère en coton."},
		},
		Category: &catalog.Category{
			Slug:  "dresses",
			Names: map[string]string{"en": "Dresses", "fr": "Robes", "ar": "فساتين"},
		},
		Tags: []catalog.Tag{
			{Type: catalog.TagOccasion, Slug: "summer", Labels: map[string]string{"en": "Summer", "fr": "Été"}},
		},
		Variants: []catalog.Variant{
			{SKU: "fd-red-m", Color: &catalog.Color{Code: "red", Labels: map[string]string{"en": "Red", "fr": "Rouge"}}, Size: &catalog.Size{Code: "m", Label: "Medium"}, Stock: 3},
		},
		Thumbnail:  "/img/floral.jpg",
		PriceCents: 7900,
		Currency:   "EUR",
		SalesCount: 120,
		AvgRating:  4.5,
	}
}

func plainShirt() catalog.Product {
	return catalog.Product{
		ID:   "p-shirt",
		Slug: "plain-shirt",
		Translations: []catalog.Translation{
			{Locale: "en", Name: "Plain Shirt", Description: "A basic everyday shirt."},
		},
		Category: &catalog.Category{
			Slug:  "shirts",
			Names: map[string]string{"en": "Shirts"},
		},
		Variants: []catalog.Variant{
			{SKU: "ps-blue-l", Color: &catalog.Color{Code: "blue", Labels: map[string]string{"en": "Blue"}}, Stock: 1},
		},
		PriceCents: 2500,
		Currency:   "EUR",
	}
}

func frenchOnlyRobe() catalog.Product {
	return catalog.Product{
		ID:   "p-robe",
		Slug: "robe-soiree",
		Translations: []catalog.Translation{
			{Locale: "fr", Name: "Robe de Soirée", Description: "Robe élégante pour les grandes occasions."},
		},
		Category: &catalog.Category{
			Slug:  "dresses",
			Names: map[string]string{"fr": "Robes"},
		},
		PriceCents: 14900,
		Currency:   "EUR",
	}
}
