// Package synonym expands search queries across the storefront's
// supported languages using a curated fashion and kids-retail term table.
package synonym

import (
	"strings"

	"github.com/heithemdev/rime-couture-sub001/internal/text"
)

// entry is a normalized synonym group: the canonical key plus every
// equivalent, pre-folded once at construction time.
type entry struct {
	key     string
	members map[string]struct{}
}

// Expander resolves query words against the synonym table.
type Expander struct {
	entries []entry
}

// New builds an expander from the built-in table, normalizing every term
// up front so lookups compare folded forms only.
func New() *Expander {
	e := &Expander{entries: make([]entry, 0, len(table))}
	for key, syns := range table {
		normKey := text.Normalize(key)
		members := make(map[string]struct{}, len(syns)+1)
		members[normKey] = struct{}{}
		for _, s := range syns {
			members[text.Normalize(s)] = struct{}{}
		}
		e.entries = append(e.entries, entry{key: normKey, members: members})
	}
	return e
}

// Expand returns the set of normalized terms equivalent to rawQuery.
// The normalized full query is always a member. For each query word,
// matching a group's key or any of its synonyms pulls in the key and
// all sibling synonyms: the closure is many-to-many, so expanding
// "robe" yields "dress" and "فستان" just as expanding "dress" yields
// "robe".
func (e *Expander) Expand(rawQuery string) map[string]struct{} {
	normalized := text.Normalize(rawQuery)

	out := make(map[string]struct{})
	if normalized != "" {
		out[normalized] = struct{}{}
	}

	for _, word := range strings.Fields(normalized) {
		for _, ent := range e.entries {
			if _, ok := ent.members[word]; !ok {
				continue
			}
			for member := range ent.members {
				out[member] = struct{}{}
			}
		}
	}

	return out
}
