package text

// DefaultGramSize is the n-gram width used by the ranking engine.
const DefaultGramSize = 3

// NGramSimilarity computes the Dice coefficient between the character
// n-gram sets of two strings after normalization:
//
//	2 * |A ∩ B| / (|A| + |B|)
//
// A normalized string shorter than n contributes itself as its single
// gram. Returns 0 when either gram set is empty. The result is
// symmetric and lies in [0, 1].
func NGramSimilarity(a, b string, n int) float64 {
	if n <= 0 {
		n = DefaultGramSize
	}

	gramsA := grams(Normalize(a), n)
	gramsB := grams(Normalize(b), n)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0
	}

	intersection := 0
	for g := range gramsA {
		if _, ok := gramsB[g]; ok {
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(gramsA)+len(gramsB))
}

// grams builds the set of contiguous n-rune substrings of s.
func grams(s string, n int) map[string]struct{} {
	if s == "" {
		return nil
	}

	runes := []rune(s)
	out := make(map[string]struct{})
	if len(runes) < n {
		out[s] = struct{}{}
		return out
	}
	for i := 0; i+n <= len(runes); i++ {
		out[string(runes[i:i+n])] = struct{}{}
	}
	return out
}
