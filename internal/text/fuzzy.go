package text

import "strings"

// FuzzyMatch grades how closely query matches target after normalization.
// Exact match scores 1.0, prefix 0.95, substring 0.9. Otherwise the
// Damerau-Levenshtein distance decides: distances within a length-scaled
// threshold score 1 - distance/maxLen, anything beyond scores a hard 0.
//
// The threshold scales with query length: up to 3 runes allow distance 1,
// up to 6 runes allow 2, longer queries allow 3.
func FuzzyMatch(query, target string) float64 {
	q := Normalize(query)
	t := Normalize(target)
	if q == "" || t == "" {
		return 0
	}

	switch {
	case q == t:
		return 1.0
	case strings.HasPrefix(t, q):
		return 0.95
	case strings.Contains(t, q):
		return 0.9
	}

	qRunes := []rune(q)
	tRunes := []rune(t)

	maxDist := 3
	switch {
	case len(qRunes) <= 3:
		maxDist = 1
	case len(qRunes) <= 6:
		maxDist = 2
	}

	dist := damerauLevenshtein(qRunes, tRunes)
	if dist > maxDist {
		return 0
	}

	maxLen := len(qRunes)
	if len(tRunes) > maxLen {
		maxLen = len(tRunes)
	}
	return 1 - float64(dist)/float64(maxLen)
}

// damerauLevenshtein computes the optimal string alignment distance:
// insertions, deletions and substitutions cost 1, and so does swapping
// two adjacent runes.
func damerauLevenshtein(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = minInt(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if swapped := prev2[j-2] + 1; swapped < curr[j] {
					curr[j] = swapped
				}
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[lb]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
