package search

import (
	"strings"

	"github.com/heithemdev/rime-couture-sub001/internal/text"
)

// ngramFloor is the minimum trigram similarity that counts as a match.
const ngramFloor = 0.4

// scoreText grades how well a candidate text field matches the scoring
// context and multiplies the grade by the field weight. Tiers are tried
// in order of confidence; the first hit wins:
//
//	exact 1.0 > prefix 0.95 > contains 0.85 > whole-word-all 0.9 >
//	whole-word-some > word-prefix > synonym > trigram > fuzzy
//
// Exact/prefix/contains are cheap string checks; the trigram and
// edit-distance fallbacks only run when everything above failed, which
// keeps the expensive work off the hot path for obvious matches.
func scoreText(field string, sc *scoringContext, weight float64) float64 {
	if field == "" || sc.queryNorm == "" {
		return 0
	}
	norm := text.Normalize(field)
	if norm == "" {
		return 0
	}

	if norm == sc.queryNorm {
		return weight
	}
	if strings.HasPrefix(norm, sc.queryNorm) {
		return weight * 0.95
	}
	if strings.Contains(norm, sc.queryNorm) {
		return weight * 0.85
	}

	fieldWords := strings.Fields(norm)
	wordSet := make(map[string]struct{}, len(fieldWords))
	for _, w := range fieldWords {
		wordSet[w] = struct{}{}
	}

	matched := 0
	for _, qw := range sc.words {
		if _, ok := wordSet[qw]; ok {
			matched++
		}
	}
	if matched > 0 && matched == len(sc.words) {
		return weight * 0.9
	}
	if matched > 0 {
		fraction := float64(matched) / float64(len(sc.words))
		return weight * (0.7 + fraction*0.15)
	}

	prefixed := 0
	for _, qw := range sc.words {
		for _, w := range fieldWords {
			if strings.HasPrefix(w, qw) || strings.HasPrefix(qw, w) {
				prefixed++
				break
			}
		}
	}
	if prefixed > 0 {
		fraction := float64(prefixed) / float64(len(sc.words))
		return weight * (0.6 + fraction*0.1)
	}

	if s := scoreSynonyms(norm, wordSet, sc); s > 0 {
		return weight * s
	}

	if ngram := text.NGramSimilarity(sc.queryNorm, norm, text.DefaultGramSize); ngram > ngramFloor {
		return weight * ngram * 0.55
	}

	best := 0.0
	for _, qw := range sc.words {
		for _, w := range fieldWords {
			if f := text.FuzzyMatch(qw, w); f > best {
				best = f
			}
		}
	}
	if best > 0 {
		return weight * best * 0.5
	}

	return 0
}

// scoreSynonyms checks whether any expanded synonym appears in the
// field: substring occurrences grade 0.65, whole-word occurrences 0.6.
func scoreSynonyms(norm string, wordSet map[string]struct{}, sc *scoringContext) float64 {
	wholeWord := false
	for syn := range sc.synonyms {
		if syn == sc.queryNorm {
			continue // the full query was already tried by the upper tiers
		}
		if strings.Contains(norm, syn) {
			return 0.65
		}
		if _, ok := wordSet[syn]; ok {
			wholeWord = true
		}
	}
	if wholeWord {
		return 0.6
	}
	return 0
}
