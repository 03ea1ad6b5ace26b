package search

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/result"
)

// maxSuggestions caps the autocomplete list.
const maxSuggestions = 10

// buildSuggestions returns the distinct result names closest to the
// query. Names the fuzzy matcher accepts come first, ordered by
// closeness; remaining names fill the list in rank order.
func buildSuggestions(query string, items []result.Item) []string {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for i := range items {
		name := items[i].Name
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	suggestions := make([]string, 0, maxSuggestions)
	picked := make(map[string]struct{}, maxSuggestions)
	for _, r := range ranks {
		if len(suggestions) == maxSuggestions {
			return suggestions
		}
		suggestions = append(suggestions, r.Target)
		picked[r.Target] = struct{}{}
	}
	for _, name := range names {
		if len(suggestions) == maxSuggestions {
			break
		}
		if _, ok := picked[name]; !ok {
			suggestions = append(suggestions, name)
		}
	}
	return suggestions
}
