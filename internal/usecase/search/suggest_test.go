package search

import (
	"testing"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/search/result"
)

func items(names ...string) []result.Item {
	out := make([]result.Item, 0, len(names))
	for _, n := range names {
		out = append(out, result.Item{Name: n})
	}
	return out
}

func TestBuildSuggestions_Empty(t *testing.T) {
	if got := buildSuggestions("dress", nil); got != nil {
		t.Errorf("expected nil for no items, got %v", got)
	}
}

func TestBuildSuggestions_Dedup(t *testing.T) {
	got := buildSuggestions("dress", items("Floral Dress", "Floral Dress", "Velvet Dress"))
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct suggestions, got %v", got)
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate suggestion %q", s)
		}
		seen[s] = true
	}
}

func TestBuildSuggestions_ClosestFirst(t *testing.T) {
	got := buildSuggestions("dress", items("Winter Coat", "Dress", "Dressing Gown"))
	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0] != "Dress" {
		t.Errorf("expected closest name first, got %v", got)
	}
	// Every distinct name still appears; non-matching ones trail.
	if len(got) != 3 {
		t.Errorf("expected all 3 names, got %v", got)
	}
}

func TestBuildSuggestions_Capped(t *testing.T) {
	names := make([]string, 0, maxSuggestions+5)
	for i := 0; i < maxSuggestions+5; i++ {
		names = append(names, "Dress "+string(rune('A'+i)))
	}
	got := buildSuggestions("dress", items(names...))
	if len(got) != maxSuggestions {
		t.Errorf("expected %d suggestions, got %d", maxSuggestions, len(got))
	}
}

func TestBuildSuggestions_SkipsBlankNames(t *testing.T) {
	got := buildSuggestions("dress", items("", "Dress"))
	if len(got) != 1 || got[0] != "Dress" {
		t.Errorf("blank names must be dropped, got %v", got)
	}
}
