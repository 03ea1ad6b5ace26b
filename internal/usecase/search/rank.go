package search

import (
	"sort"

	"go.uber.org/zap"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

// Per-category field weights. Name dominates; size barely registers.
const (
	weightName        = 1.0
	weightDescription = 0.6
	weightSlug        = 0.6
	weightCategory    = 0.4
	weightTag         = 0.4
	weightColor       = 0.3
	weightSize        = 0.2
)

// Multiplicative popularity boosts, applied only when the base score is
// positive.
const (
	featuredBoost       = 1.1
	popularityBoost     = 1.05
	popularityThreshold = 50
	ratingBoost         = 1.03
	ratingThreshold     = 4.0
)

// scoredProduct pairs a candidate with its total score and the
// deduplicated set of categories that contributed to it.
type scoredProduct struct {
	product *catalog.Product
	score   float64
	reasons []string
}

// rankProducts scores every candidate against the context, filters by
// minScore, and orders by score descending. The sort is stable: equal
// scores keep their fetch order. A panic while scoring one candidate is
// recovered and the candidate skipped so a malformed record cannot take
// down the whole search.
func (s *Service) rankProducts(products []catalog.Product, sc *scoringContext) []scoredProduct {
	scored := make([]scoredProduct, 0, len(products))
	for i := range products {
		sp, ok := s.scoreProduct(&products[i], sc)
		if !ok {
			continue
		}
		if sp.score >= s.minScore {
			scored = append(scored, sp)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored
}

func (s *Service) scoreProduct(p *catalog.Product, sc *scoringContext) (sp scoredProduct, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("candidate scoring panicked, skipping product",
				zap.String("product_id", p.ID),
				zap.Any("panic", r),
			)
			ok = false
		}
	}()

	total := 0.0
	var reasons []string
	addCategory := func(reason string, score float64) {
		if score > 0 {
			total += score
			reasons = append(reasons, reason)
		}
	}

	var bestName, bestDescription float64
	for i := range p.Translations {
		tr := &p.Translations[i]
		if v := scoreText(tr.Name, sc, weightName); v > bestName {
			bestName = v
		}
		if v := scoreText(tr.Description, sc, weightDescription); v > bestDescription {
			bestDescription = v
		}
	}
	addCategory("name", bestName)
	addCategory("description", bestDescription)

	addCategory("slug", scoreText(p.Slug, sc, weightSlug))

	if p.Category != nil {
		best := scoreText(p.Category.Slug, sc, weightCategory)
		for _, name := range p.Category.Names {
			if v := scoreText(name, sc, weightCategory); v > best {
				best = v
			}
		}
		addCategory("category", best)
	}

	for tagType, best := range scoreTagsByType(p.Tags, sc) {
		addCategory("tag:"+tagType, best)
	}

	colorBest, sizeBest := scoreVariants(p.Variants, sc)
	addCategory("color", colorBest)
	addCategory("size", sizeBest)

	if total > 0 {
		if p.IsFeatured {
			total *= featuredBoost
		}
		if p.SalesCount > popularityThreshold {
			total *= popularityBoost
		}
		if p.AvgRating > ratingThreshold {
			total *= ratingBoost
		}
	}

	sort.Strings(reasons)
	return scoredProduct{product: p, score: total, reasons: reasons}, true
}

// scoreTagsByType returns the best label/slug score per tag type.
func scoreTagsByType(tags []catalog.Tag, sc *scoringContext) map[string]float64 {
	if len(tags) == 0 {
		return nil
	}
	best := make(map[string]float64)
	for i := range tags {
		tag := &tags[i]
		v := scoreText(tag.Slug, sc, weightTag)
		for _, label := range tag.Labels {
			if lv := scoreText(label, sc, weightTag); lv > v {
				v = lv
			}
		}
		if v > best[tag.Type] {
			best[tag.Type] = v
		}
	}
	return best
}

// scoreVariants returns the best color and size score across all
// variants. Duplicate color/size codes are scored once.
func scoreVariants(variants []catalog.Variant, sc *scoringContext) (colorBest, sizeBest float64) {
	seenColors := make(map[string]struct{})
	seenSizes := make(map[string]struct{})

	for i := range variants {
		v := &variants[i]
		if v.Color != nil {
			if _, seen := seenColors[v.Color.Code]; !seen {
				seenColors[v.Color.Code] = struct{}{}
				cv := scoreText(v.Color.Code, sc, weightColor)
				for _, label := range v.Color.Labels {
					if lv := scoreText(label, sc, weightColor); lv > cv {
						cv = lv
					}
				}
				if cv > colorBest {
					colorBest = cv
				}
			}
		}
		if v.Size != nil {
			if _, seen := seenSizes[v.Size.Code]; !seen {
				seenSizes[v.Size.Code] = struct{}{}
				sv := scoreText(v.Size.Code, sc, weightSize)
				if lv := scoreText(v.Size.Label, sc, weightSize); lv > sv {
					sv = lv
				}
				if sv > sizeBest {
					sizeBest = sv
				}
			}
		}
	}
	return colorBest, sizeBest
}
