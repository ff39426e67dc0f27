package domain

import "fmt"

// NoAccountCode stands in for the missing side of an unmatched pair inside
// review scope keys.
const NoAccountCode = "NONE"

// ReviewEntry is one user annotation on an unmatched transaction row. An
// entry with Corrected=false and an empty Note is never stored: absence from
// the map IS the unreviewed state.
type ReviewEntry struct {
	Corrected bool   `json:"corrected"`
	Note      string `json:"note,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ReviewPatch is a partial update to one review entry. Nil fields keep the
// existing value.
type ReviewPatch struct {
	Corrected *bool
	Note      *string
}

// KeyedReviewPatch pairs a patch with the review key it targets.
type KeyedReviewPatch struct {
	Key   string
	Patch ReviewPatch
}

// PairScopeKey identifies the matched account pair a review entry belongs to.
// Re-matching an SMMM account against a different Firma account changes the
// scope and deliberately orphans the old pair's entries.
func PairScopeKey(smmmCode, firmaCode string) string {
	if smmmCode == "" {
		smmmCode = NoAccountCode
	}
	if firmaCode == "" {
		firmaCode = NoAccountCode
	}
	return smmmCode + "::" + firmaCode
}

// ReviewKeyFor derives the persisted review key for one unmatched row. The
// format is shared with other consumers of the stored state and must not
// change: scope|SIDE|date|debitCents|creditCents|positionalIndex.
func ReviewKeyFor(scopeKey string, side Side, row ComparableTransaction, index int) string {
	return fmt.Sprintf("%s|%s|%s|%d|%d|%d",
		scopeKey, side, row.DateKey, Cents(row.Debit), Cents(row.Credit), index)
}
