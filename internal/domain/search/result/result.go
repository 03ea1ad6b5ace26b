// Package result defines the search response shape. The whole response
// is JSON-serializable because cache hits replay the stored payload
// byte for byte.
package result

// Item is a single ranked product hit with its display fields resolved
// for the requested locale.
type Item struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	CategoryName string   `json:"category_name,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	PriceCents   int64    `json:"price_cents"`
	Currency     string   `json:"currency,omitempty"`
	InStock      bool     `json:"in_stock"`
	Score        float64  `json:"score"`
	MatchReasons []string `json:"match_reasons,omitempty"`
}

// Response is the full search payload. It is always well-formed: failed
// searches carry Success=false with an empty result list rather than a
// bare error.
type Response struct {
	Success     bool     `json:"success"`
	Query       string   `json:"query"`
	Results     []Item   `json:"results"`
	Total       int      `json:"total"`
	Suggestions []string `json:"suggestions,omitempty"`
	Cached      bool     `json:"cached"`
	Error       string   `json:"error,omitempty"`
}

// Failure builds the defined error payload for a query.
func Failure(query string) *Response {
	return &Response{
		Success: false,
		Query:   query,
		Results: []Item{},
		Error:   "search failed",
	}
}

// Empty builds the defined empty-result payload for short or
// unanswerable queries.
func Empty(query string) *Response {
	return &Response{
		Success: true,
		Query:   query,
		Results: []Item{},
	}
}
