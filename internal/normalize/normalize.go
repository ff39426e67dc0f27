// Package normalize canonicalizes free-text account names and dates so the
// rest of the engine can compare them without caring about locale. It is the
// only package that knows the ledgers are Turkish.
package normalize

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UndatedKey is the sentinel date key for rows whose date could not be read.
const UndatedKey = "TARIHSIZ"

// separatorWords are legal-entity suffixes and conjunctions that carry no
// identity: "ACME TEKSTIL SAN. VE TIC. LTD. STI." names the same counter-party
// as "ACME TEKSTIL".
var separatorWords = map[string]struct{}{
	"LTD":       {},
	"LIMITED":   {},
	"STI":       {},
	"SIRKETI":   {},
	"AS":        {},
	"ANONIM":    {},
	"TIC":       {},
	"TICARET":   {},
	"SAN":       {},
	"SANAYI":    {},
	"VE":        {},
	"PAZ":       {},
	"PAZARLAMA": {},
}

// Name canonicalizes an account display name for comparison: Turkish-aware
// lowercasing (so I/İ and ı/i fold correctly), diacritic stripping, uppercase,
// punctuation to spaces, separator-word removal and whitespace collapse.
func Name(raw string) string {
	// Casers are stateful, so build one per call instead of sharing.
	s := cases.Lower(language.Turkish).String(raw)
	// Dotless ı has no combining-mark decomposition, fold it by hand before
	// the generic diacritic strip.
	s = strings.ReplaceAll(s, "ı", "i")
	s = stripDiacritics(s)
	s = strings.ToUpper(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, w := range fields {
		if _, skip := separatorWords[w]; skip {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// Tokenize splits a normalized name into comparison tokens, dropping
// single-character fragments left over from abbreviations like "A.Ş.".
func Tokenize(normalized string) []string {
	var tokens []string
	for _, w := range strings.Fields(normalized) {
		if len(w) > 1 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// FormatDateKey renders a transaction date as a YYYY-MM-DD bucket key in the
// value's own calendar fields. The zero time means the source cell was
// missing or unparseable and maps to the UndatedKey sentinel.
func FormatDateKey(t time.Time) string {
	if t.IsZero() {
		return UndatedKey
	}
	return t.Format(time.DateOnly)
}

// NewCollator returns a collator for ordering account display names the way a
// Turkish ledger would list them. Collators keep internal buffers, so callers
// get a fresh one per run instead of sharing a package-level instance.
func NewCollator() *collate.Collator {
	return collate.New(language.Turkish)
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
