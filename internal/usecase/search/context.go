package search

import (
	"strings"

	"github.com/heithemdev/rime-couture-sub001/internal/synonym"
	"github.com/heithemdev/rime-couture-sub001/internal/text"
)

// scoringContext carries everything derived from the query once per
// search. It is built before ranking starts and never mutated while
// candidates are scored.
type scoringContext struct {
	query     string
	queryNorm string
	words     []string
	synonyms  map[string]struct{}
}

// newScoringContext normalizes the raw query, tokenizes it, and expands
// its synonym closure.
func newScoringContext(rawQuery string, expander *synonym.Expander) *scoringContext {
	norm := text.Normalize(rawQuery)
	return &scoringContext{
		query:     rawQuery,
		queryNorm: norm,
		words:     strings.Fields(norm),
		synonyms:  expander.Expand(rawQuery),
	}
}
