package search

import (
	"testing"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

func TestRankProducts_OrderAndFilter(t *testing.T) {
	svc := newTestService(&mockSource{}, nil)
	sc := scoringCtx("dress")

	products := []catalog.Product{plainShirt(), floralDress(), frenchOnlyRobe()}
	scored := svc.rankProducts(products, sc)

	if len(scored) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(scored))
	}
	if scored[0].product.ID != "p-floral" {
		t.Errorf("expected direct name match first, got %s", scored[0].product.ID)
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].score > scored[i-1].score {
			t.Errorf("scores not descending at %d: %v > %v", i, scored[i].score, scored[i-1].score)
		}
	}
	for _, sp := range scored {
		if sp.product.ID == "p-shirt" {
			t.Error("unrelated product should be filtered out by min score")
		}
	}
}

func TestRankProducts_CrossLocaleMatch(t *testing.T) {
	svc := newTestService(&mockSource{}, nil)
	sc := scoringCtx("dress")

	scored := svc.rankProducts([]catalog.Product{frenchOnlyRobe()}, sc)
	if len(scored) != 1 {
		t.Fatalf("expected the French-only product to match an English query, got %d results", len(scored))
	}
}

func TestRankProducts_StableTies(t *testing.T) {
	svc := newTestService(&mockSource{}, nil)
	sc := scoringCtx("dress")

	a := frenchOnlyRobe()
	a.ID = "tie-a"
	b := frenchOnlyRobe()
	b.ID = "tie-b"

	scored := svc.rankProducts([]catalog.Product{a, b}, sc)
	if len(scored) != 2 {
		t.Fatalf("expected 2 results, got %d", len(scored))
	}
	if scored[0].product.ID != "tie-a" || scored[1].product.ID != "tie-b" {
		t.Errorf("equal scores must keep input order, got %s, %s",
			scored[0].product.ID, scored[1].product.ID)
	}
}

func TestScoreProduct_Boosts(t *testing.T) {
	svc := newTestService(&mockSource{}, nil)
	sc := scoringCtx("robe de soiree")

	base := frenchOnlyRobe()
	baseScored, ok := svc.scoreProduct(&base, sc)
	if !ok || baseScored.score <= 0 {
		t.Fatalf("base product should score, got %v ok=%v", baseScored.score, ok)
	}

	boosted := frenchOnlyRobe()
	boosted.IsFeatured = true
	boosted.SalesCount = popularityThreshold + 1
	boosted.AvgRating = ratingThreshold + 0.5
	boostedScored, _ := svc.scoreProduct(&boosted, sc)

	want := baseScored.score * featuredBoost * popularityBoost * ratingBoost
	if !almostEqual(boostedScored.score, want) {
		t.Errorf("boosted score = %v, want %v", boostedScored.score, want)
	}
}

func TestScoreProduct_NoBoostWithoutMatch(t *testing.T) {
	svc := newTestService(&mockSource{}, nil)
	sc := scoringCtx("zzzzqqqq")

	p := floralDress()
	p.IsFeatured = true
	sp, ok := svc.scoreProduct(&p, sc)
	if !ok {
		t.Fatal("scoring should succeed")
	}
	if sp.score != 0 {
		t.Errorf("boosts must not lift a zero score, got %v", sp.score)
	}
}

func TestScoreProduct_MatchReasons(t *testing.T) {
	svc := newTestService(&mockSource{}, nil)
	sc := scoringCtx("dress")

	p := floralDress()
	sp, ok := svc.scoreProduct(&p, sc)
	if !ok {
		t.Fatal("scoring should succeed")
	}

	reasons := make(map[string]bool, len(sp.reasons))
	for _, r := range sp.reasons {
		if reasons[r] {
			t.Errorf("duplicate match reason %q", r)
		}
		reasons[r] = true
	}
	for _, want := range []string{"name", "slug", "category"} {
		if !reasons[want] {
			t.Errorf("missing match reason %q in %v", want, sp.reasons)
		}
	}
}

func TestRankProducts_MalformedRecordSkipped(t *testing.T) {
	svc := newTestService(&mockSource{}, nil)
	sc := scoringCtx("dress")

	// An empty record with bare variants must not match and must not
	// disturb the ranking of healthy candidates.
	broken := catalog.Product{
		ID:       "p-broken",
		Variants: []catalog.Variant{{SKU: "x"}},
	}

	scored := svc.rankProducts([]catalog.Product{broken, floralDress()}, sc)
	if len(scored) != 1 {
		t.Fatalf("expected 1 result, got %d", len(scored))
	}
	if scored[0].product.ID != "p-floral" {
		t.Errorf("healthy product should rank, got %s", scored[0].product.ID)
	}
}
