// Package chi exposes the search engine over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/heithemdev/rime-couture-sub001/internal/domain"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/request"
	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/result"
	searchuc "github.com/heithemdev/rime-couture-sub001/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest         = "bad_request"
	codeRateLimited        = "rate_limited"
	codeCatalogUnavailable = "catalog_unavailable"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pinger reports backend liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the HTTP handlers for the search API.
type Server struct {
	search *searchuc.Service
	cache  Pinger // nil for the in-memory driver
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, logger: logger}
}

// WithCachePinger wires a backend liveness probe into the health check.
func (s *Server) WithCachePinger(p Pinger) *Server {
	s.cache = p
	return s
}

// Mount registers all routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.HandleSearch)
	})
}

// HandleSearch handles GET /api/v1/search.
//
// Query parameters: q (text), locale (en/fr/ar), limit, autocomplete.
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	autocomplete := false
	if raw := q.Get("autocomplete"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "autocomplete must be a boolean")
			return
		}
		autocomplete = b
	}

	req, err := request.New(q.Get("q"), q.Get("locale"), limit, autocomplete)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	resp, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, resp, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleDomainError maps sentinel errors to HTTP statuses. The degraded
// payload, when present, is returned verbatim so clients always get the
// envelope they expect.
func (s *Server) handleDomainError(w http.ResponseWriter, resp *result.Response, err error) {
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		s.logger.Warn("catalog unavailable", zap.Error(err))
		if resp != nil {
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		writeError(w, http.StatusServiceUnavailable, codeCatalogUnavailable, "catalog unavailable")
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, codeBadRequest, domain.ErrInvalidRequest.Error())
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, codeRateLimited, domain.ErrRateLimited.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := "ok"
	httpStatus := http.StatusOK

	if s.cache != nil {
		if err := s.cache.Ping(r.Context()); err != nil {
			s.logger.Warn("cache ping failed", zap.Error(err))
			checks["cache"] = "down"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		} else {
			checks["cache"] = "up"
		}
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": status,
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
