package domain

// MatchStatus classifies one comparison result.
type MatchStatus string

const (
	StatusDifference     MatchStatus = "DIFFERENCE"
	StatusUnmatchedSMMM  MatchStatus = "UNMATCHED_SMMM"
	StatusUnmatchedFirma MatchStatus = "UNMATCHED_FIRMA"
	StatusMatched        MatchStatus = "MATCHED"
)

// Precedence is the report ordering rank: differences first, clean matches
// last, so the rows needing attention lead the list.
func (s MatchStatus) Precedence() int {
	switch s {
	case StatusDifference:
		return 0
	case StatusUnmatchedSMMM:
		return 1
	case StatusUnmatchedFirma:
		return 2
	default:
		return 3
	}
}

// TransactionSummary counts how the two sides' rows lined up for one pair.
type TransactionSummary struct {
	SmmmTotal   int `json:"smmmTotal"`
	FirmaTotal  int `json:"firmaTotal"`
	Matched     int `json:"matched"`
	OnlyInSmmm  int `json:"onlyInSmmm"`
	OnlyInFirma int `json:"onlyInFirma"`
}

// TransactionDiffRow is one (date, debit, credit) bucket with an imbalance
// between the sides.
type TransactionDiffRow struct {
	DateKey     string  `json:"date"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	SmmmCount   int     `json:"smmmCount"`
	FirmaCount  int     `json:"firmaCount"`
	OnlyInSmmm  int     `json:"onlyInSmmm"`
	OnlyInFirma int     `json:"onlyInFirma"`
}

// ComparisonResult is one matched pair or one unmatched account. Results are
// built fresh each run and never mutated afterward; the ID is an opaque
// per-run identifier and is not stable across runs.
type ComparisonResult struct {
	ID                         string                  `json:"id"`
	SmmmAccount                *Account                `json:"smmmAccount,omitempty"`
	FirmaAccount               *Account                `json:"firmaAccount,omitempty"`
	Status                     MatchStatus             `json:"status"`
	MatchScore                 float64                 `json:"matchScore"`
	IsManual                   bool                    `json:"isManual,omitempty"`
	Difference                 float64                 `json:"difference"`
	DebitDifference            float64                 `json:"debitDifference"`
	CreditDifference           float64                 `json:"creditDifference"`
	TransactionSummary         TransactionSummary      `json:"transactionSummary"`
	TransactionDiffRows        []TransactionDiffRow    `json:"transactionDiffRows"`
	UnmatchedSmmmTransactions  []ComparableTransaction `json:"unmatchedSmmmTransactions"`
	UnmatchedFirmaTransactions []ComparableTransaction `json:"unmatchedFirmaTransactions"`
	Notes                      string                  `json:"notes,omitempty"`
}

// DisplayName is the name the result sorts and renders under: the SMMM
// account's when present, otherwise the Firma account's.
func (r ComparisonResult) DisplayName() string {
	if r.SmmmAccount != nil {
		return r.SmmmAccount.Name
	}
	if r.FirmaAccount != nil {
		return r.FirmaAccount.Name
	}
	return ""
}

// ScopeKey is the review scope of this result's account pair.
func (r ComparisonResult) ScopeKey() string {
	var smmm, firma string
	if r.SmmmAccount != nil {
		smmm = r.SmmmAccount.Code
	}
	if r.FirmaAccount != nil {
		firma = r.FirmaAccount.Code
	}
	return PairScopeKey(smmm, firma)
}
