package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/similarity"
)

func TestScore(t *testing.T) {
	var scorer similarity.Scorer

	t.Run("exact normalized equality scores 1", func(t *testing.T) {
		assert.Equal(t, 1.0, scorer.Score("ACME", "ACME"))
		// Suffix noise disappears in normalization.
		assert.Equal(t, 1.0, scorer.Score("Acme Ltd. Şti.", "ACME"))
	})

	t.Run("empty normalized name scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, scorer.Score("", "ACME"))
		assert.Equal(t, 0.0, scorer.Score("Ltd. Şti.", "ACME"))
		assert.Equal(t, 0.0, scorer.Score("", ""))
	})

	t.Run("blend of token overlap and edit distance", func(t *testing.T) {
		// "ACME" vs "ACME TEKSTIL": Jaccard 1/2 over token sets,
		// Levenshtein 8 inserts over max length 12.
		want := 0.65*0.5 + 0.35*(1-8.0/12.0)
		assert.InDelta(t, want, scorer.Score("ACME", "ACME TEKSTIL"), 1e-12)
	})

	t.Run("token overlap survives word reordering", func(t *testing.T) {
		got := scorer.Score("TEKSTIL ACME", "ACME TEKSTIL")
		assert.GreaterOrEqual(t, got, 0.65)
		assert.Less(t, got, 1.0)
	})

	t.Run("unrelated names score low", func(t *testing.T) {
		assert.Less(t, scorer.Score("ACME TEKSTIL", "ZEBRA LOJISTIK"), 0.35)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t,
			scorer.Score("ACME TEKSTIL", "ACME TEKSTIL SANAYI"),
			scorer.Score("ACME TEKSTIL SANAYI", "ACME TEKSTIL"))
	})
}
