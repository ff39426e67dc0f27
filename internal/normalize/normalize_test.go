package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/normalize"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips legal suffixes and conjunctions",
			in:   "Acme Tekstil San. ve Tic. Ltd. Şti.",
			want: "ACME TEKSTIL",
		},
		{
			name: "dotted capital I folds to plain I",
			in:   "İSTANBUL GIDA",
			want: "ISTANBUL GIDA",
		},
		{
			name: "dotless lowercase i folds to plain I",
			in:   "Çağrı Pazarlama",
			want: "CAGRI",
		},
		{
			name: "diacritics removed and punctuation spaced",
			in:   "Öz-Gür & Ümit Şeker",
			want: "OZ GUR UMIT SEKER",
		},
		{
			name: "only suffixes leaves empty",
			in:   "Ltd. Şti.",
			want: "",
		},
		{
			name: "whitespace collapsed",
			in:   "  ACME   TEKSTIL  ",
			want: "ACME TEKSTIL",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Name(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "splits on spaces",
			in:   "ACME TEKSTIL",
			want: []string{"ACME", "TEKSTIL"},
		},
		{
			name: "drops single character fragments",
			in:   "A S ACME",
			want: []string{"ACME"},
		},
		{
			name: "empty string has no tokens",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Tokenize(tt.in))
		})
	}
}

func TestFormatDateKey(t *testing.T) {
	assert.Equal(t, "TARIHSIZ", normalize.FormatDateKey(time.Time{}))
	assert.Equal(t, "2024-03-15", normalize.FormatDateKey(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	// The value's own calendar fields are used, no timezone conversion.
	loc := time.FixedZone("TRT", 3*60*60)
	assert.Equal(t, "2024-01-01", normalize.FormatDateKey(time.Date(2024, 1, 1, 0, 30, 0, 0, loc)))
}

func TestNewCollatorOrdersTurkishNames(t *testing.T) {
	col := normalize.NewCollator()
	assert.Negative(t, col.CompareString("ACME", "BETA"))
	assert.Positive(t, col.CompareString("BETA", "ACME"))
	assert.Zero(t, col.CompareString("ACME", "ACME"))
}
