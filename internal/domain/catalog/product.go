// Package catalog defines the read-only product records the search
// engine scores. Ownership of the data belongs to the storefront
// backend; the engine never mutates a product.
package catalog

// Supported locales. English is the fallback for missing translations.
const (
	LocaleEN = "en"
	LocaleFR = "fr"
	LocaleAR = "ar"

	DefaultLocale = LocaleEN
)

// Tag type discriminators.
const (
	TagMaterial = "material"
	TagPattern  = "pattern"
	TagOccasion = "occasion"
)

// Translation is a localized name/description pair.
type Translation struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category is the product's category with localized names keyed by locale.
type Category struct {
	Slug  string            `json:"slug"`
	Names map[string]string `json:"names"`
}

// Tag is a typed product tag (material, pattern, occasion) with
// localized labels keyed by locale.
type Tag struct {
	Type   string            `json:"type"`
	Slug   string            `json:"slug"`
	Labels map[string]string `json:"labels"`
}

// Size is a variant size.
type Size struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Color is a variant color with localized labels keyed by locale.
type Color struct {
	Code   string            `json:"code"`
	Hex    string            `json:"hex"`
	Labels map[string]string `json:"labels"`
}

// Variant is a purchasable product variation.
type Variant struct {
	SKU   string `json:"sku"`
	Size  *Size  `json:"size,omitempty"`
	Color *Color `json:"color,omitempty"`
	Stock int    `json:"stock"`
}

// Product is a published catalog record with everything the ranking
// engine scores: translations, category, typed tags, variants with
// size/color, and popularity signals.
type Product struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Translations []Translation `json:"translations"`
	Category     *Category     `json:"category,omitempty"`
	Tags         []Tag         `json:"tags,omitempty"`
	Variants     []Variant     `json:"variants,omitempty"`
	Thumbnail    string        `json:"thumbnail,omitempty"`
	PriceCents   int64         `json:"price_cents"`
	Currency     string        `json:"currency"`
	IsFeatured   bool          `json:"is_featured"`
	SalesCount   int           `json:"sales_count"`
	AvgRating    float64       `json:"avg_rating"`
}

// Translation resolves the localized text for the given locale using the
// fallback chain: requested locale, then the default locale, then any
// available translation. The second return is false when the product has
// no translations at all; display code then falls back to the raw slug.
func (p *Product) Translation(locale string) (Translation, bool) {
	var def *Translation
	for i := range p.Translations {
		tr := &p.Translations[i]
		if tr.Locale == locale {
			return *tr, true
		}
		if tr.Locale == DefaultLocale {
			def = tr
		}
	}
	if def != nil {
		return *def, true
	}
	if len(p.Translations) > 0 {
		return p.Translations[0], true
	}
	return Translation{}, false
}

// DisplayName returns the locale-resolved product name, falling back to
// the slug when no translation exists.
func (p *Product) DisplayName(locale string) string {
	if tr, ok := p.Translation(locale); ok && tr.Name != "" {
		return tr.Name
	}
	return p.Slug
}

// InStock reports whether any variant has stock remaining.
func (p *Product) InStock() bool {
	for _, v := range p.Variants {
		if v.Stock > 0 {
			return true
		}
	}
	return false
}
