// Package text provides the normalization and string-similarity primitives
// used by product search: locale folding, character n-gram similarity, and
// edit-distance fuzzy matching.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// arabicFolder maps Arabic letter variants to their comparable base forms
// and removes the tatweel elongation character entirely.
var arabicFolder = strings.NewReplacer(
	"أ", "ا", // alef with hamza above -> alef
	"إ", "ا", // alef with hamza below -> alef
	"آ", "ا", // alef with madda -> alef
	"ى", "ي", // alef maksura -> yaa
	"ة", "ه", // taa marbuta -> haa
	"ؤ", "و", // waw with hamza -> waw
	"ئ", "ي", // yaa with hamza -> yaa
	"ـ", "", // tatweel
)

// ligatureFolder expands Latin ligatures that NFD leaves intact.
var ligatureFolder = strings.NewReplacer(
	"œ", "oe", // œ
	"æ", "ae", // æ
)

// stripCombining removes Unicode combining marks (category M) after NFD
// decomposition. Covers both Arabic tashkeel and Latin accents.
type stripCombining struct{ transform.NopResetter }

func (stripCombining) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if unicode.Is(unicode.M, r) {
			nSrc += size
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}

var foldChain = transform.Chain(norm.NFD, stripCombining{}, norm.NFC)

// Normalize folds text into a comparable lowercase form:
//
//  1. Lowercase and trim.
//  2. Canonicalize Arabic letter variants (hamza carriers, alef maksura,
//     taa marbuta) and drop tatweel.
//  3. Expand œ/æ ligatures.
//  4. NFD-decompose and strip combining marks. This removes Arabic
//     tashkeel and French accents in one pass; diacritic stripping
//     happens before any remaining letter comparison so composed and
//     decomposed inputs fold identically.
//  5. Collapse whitespace runs to single spaces.
//
// Normalize is pure and total: empty in, empty out. It is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	s = arabicFolder.Replace(s)
	s = ligatureFolder.Replace(s)

	folded, _, err := transform.String(foldChain, s)
	if err == nil {
		s = folded
	}

	return strings.Join(strings.Fields(s), " ")
}
