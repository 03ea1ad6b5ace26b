package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Cache: CacheConfig{
			Driver: "redis",
			Addrs:  []string{"localhost:6379"},
		},
		Catalog: CatalogConfig{Source: "redis", Key: "search:catalog:snapshot"},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_InvalidCacheDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Driver = "memcached"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown cache driver")
	}

	expected := `cache.driver must be "memory" or "redis", got "memcached"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_MissingRedisAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing redis addrs")
	}
}

func TestValidate_RedisCatalogNeedsRedisCache(t *testing.T) {
	cfg := validConfig()
	cfg.Cache = CacheConfig{Driver: "memory"}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for redis catalog over memory cache")
	}
}

func TestValidate_FileCatalogNeedsPath(t *testing.T) {
	cfg := validConfig()
	cfg.Cache = CacheConfig{Driver: "memory"}
	cfg.Catalog = CatalogConfig{Source: "file"}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for file catalog without a path")
	}

	cfg.Catalog.Path = "testdata/snapshot.json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MinScoreBound(t *testing.T) {
	cfg := validConfig()
	cfg.Search.MinScore = 1.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for min_score above 1")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Cache.Driver != "memory" {
		t.Errorf("expected Driver='memory', got %q", cfg.Cache.Driver)
	}
	if cfg.Cache.Capacity != 500 {
		t.Errorf("expected Capacity=500, got %d", cfg.Cache.Capacity)
	}
	if cfg.Cache.TTLSec != 30 {
		t.Errorf("expected TTLSec=30, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Catalog.Source != "redis" {
		t.Errorf("expected Source='redis', got %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.Key != "search:catalog:snapshot" {
		t.Errorf("expected default snapshot key, got %q", cfg.Catalog.Key)
	}
	if cfg.Search.MinScore != 0.2 {
		t.Errorf("expected MinScore=0.2, got %v", cfg.Search.MinScore)
	}
	if cfg.Search.MinQueryLength != 2 {
		t.Errorf("expected MinQueryLength=2, got %d", cfg.Search.MinQueryLength)
	}
	if cfg.Search.MaxCandidates != 5000 {
		t.Errorf("expected MaxCandidates=5000, got %d", cfg.Search.MaxCandidates)
	}
	if cfg.Search.Retry.MaxAttempts != 3 {
		t.Errorf("expected MaxAttempts=3, got %d", cfg.Search.Retry.MaxAttempts)
	}
	if cfg.Search.Retry.BaseDelayMs != 200 {
		t.Errorf("expected BaseDelayMs=200, got %d", cfg.Search.Retry.BaseDelayMs)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Cache:  CacheConfig{Driver: "redis", Capacity: 100, TTLSec: 60, ReadinessTimeout: 15},
		Search: SearchConfig{MinScore: 0.5, MinQueryLength: 3, MaxCandidates: 100},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Cache.Driver != "redis" {
		t.Errorf("expected Driver='redis', got %q", cfg.Cache.Driver)
	}
	if cfg.Cache.TTLSec != 60 {
		t.Errorf("expected TTLSec=60, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Search.MinScore != 0.5 {
		t.Errorf("expected MinScore=0.5, got %v", cfg.Search.MinScore)
	}
}

func TestApplyDefaults_RateLimitBurst(t *testing.T) {
	cfg := Config{RateLimit: RateLimitConfig{RPS: 10}}
	cfg.ApplyDefaults()

	if cfg.RateLimit.Burst != 20 {
		t.Errorf("expected Burst=20, got %d", cfg.RateLimit.Burst)
	}

	off := Config{}
	off.ApplyDefaults()
	if off.RateLimit.Burst != 0 {
		t.Errorf("disabled rate limit must not gain a burst, got %d", off.RateLimit.Burst)
	}
}
