package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to a storesearch server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithAPIKey sends a Bearer token with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchParams are the query parameters for one search call.
type SearchParams struct {
	Query        string
	Locale       string // en, fr, ar
	Limit        int
	Autocomplete bool
}

// Item is one ranked product.
type Item struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	CategoryName string   `json:"category_name,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	PriceCents   int64    `json:"price_cents"`
	Currency     string   `json:"currency"`
	InStock      bool     `json:"in_stock"`
	Score        float64  `json:"score"`
	MatchReasons []string `json:"match_reasons,omitempty"`
}

// SearchResponse is the search envelope.
type SearchResponse struct {
	Success     bool     `json:"success"`
	Query       string   `json:"query"`
	Results     []Item   `json:"results"`
	Total       int      `json:"total"`
	Suggestions []string `json:"suggestions,omitempty"`
	Cached      bool     `json:"cached"`
	Error       string   `json:"error,omitempty"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storesearch: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Search runs one search. A degraded payload (catalog unavailable) is
// returned with a non-nil *APIError carrying the 503 status.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", params.Query)
	if params.Locale != "" {
		q.Set("locale", params.Locale)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Autocomplete {
		q.Set("autocomplete", "true")
	}

	target := c.baseURL + "/api/v1/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK {
		var out SearchResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &out, nil
	}

	// The server returns the search envelope on 503 and an error object
	// on every other failure; sniff the payload shape.
	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: "unknown", Message: "unreadable response"}
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		var out SearchResponse
		if err := json.Unmarshal(raw, &out); err == nil && !out.Success {
			return &out, &APIError{
				StatusCode: resp.StatusCode,
				Code:       "catalog_unavailable",
				Message:    out.Error,
			}
		}
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unknown"
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return nil, apiErr
}

// Health reports whether the server and its cache backend are up.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Code: "unhealthy", Message: "service degraded"}
	}
	return nil
}
