// Package similarity scores how likely two account names denote the same
// counter-party.
package similarity

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/normalize"
)

// The blend weights token-set overlap above literal spelling: token overlap
// survives word reordering and abbreviation, while edit distance on the
// normalized residue still rewards near-identical spellings when
// tokenization diverges.
const (
	tokenWeight = 0.65
	editWeight  = 0.35
)

// Scorer blends token-set Jaccard overlap with Levenshtein distance over
// normalized account names. The zero value is ready to use.
type Scorer struct{}

// Score returns a similarity in [0,1]: 0 when either name normalizes to
// empty, 1 on exact normalized equality, otherwise the weighted blend of the
// two metrics. The raw blend is returned unrounded; presentation layers round
// for display so that threshold comparisons stay exact.
func (Scorer) Score(nameA, nameB string) float64 {
	na := normalize.Name(nameA)
	nb := normalize.Name(nameB)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	j := jaccard(normalize.Tokenize(na), normalize.Tokenize(nb))

	ra, rb := []rune(na), []rune(nb)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	dist := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	edit := 1 - float64(dist)/float64(maxLen)

	return tokenWeight*j + editWeight*edit
}

// jaccard is |A∩B| / |A∪B| over token sets, 1 when both sets are empty.
func jaccard(a, b []string) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}

	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 1
	}
	return float64(inter) / float64(union)
}
