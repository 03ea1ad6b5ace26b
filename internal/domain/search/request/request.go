package request

import (
	"fmt"
	"strings"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in bytes.
	MaxQueryLength = 256
	DefaultLimit   = 20
	// MaxLimit is the hard result ceiling enforced regardless of the
	// caller's requested limit.
	MaxLimit = 50
)

// Request is a validated search query.
type Request struct {
	query        string
	locale       string
	limit        int
	autocomplete bool
}

// New validates and normalizes search parameters. Unknown locales fall
// back to the default locale; limit is clamped into [1, MaxLimit] with
// DefaultLimit applied when unset. A short or empty query is not an
// error here: the engine answers it with an empty result set.
func New(query, locale string, limit int, autocomplete bool) (Request, error) {
	query = strings.TrimSpace(query)
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d bytes)", MaxQueryLength)
	}

	switch locale {
	case catalog.LocaleEN, catalog.LocaleFR, catalog.LocaleAR:
	default:
		locale = catalog.DefaultLocale
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Request{
		query:        query,
		locale:       locale,
		limit:        limit,
		autocomplete: autocomplete,
	}, nil
}

// Query returns the trimmed search query text.
func (r *Request) Query() string { return r.query }

// Locale returns the resolved result locale.
func (r *Request) Locale() string { return r.locale }

// Limit returns the maximum results to return.
func (r *Request) Limit() int { return r.limit }

// Autocomplete reports whether name suggestions were requested.
func (r *Request) Autocomplete() bool { return r.autocomplete }
