package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/normalize"
	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/similarity"
)

// MatchThreshold is the minimum blended name-similarity score for an
// automatic account pairing.
const MatchThreshold = 0.62

// BalanceTolerance is the absolute balance gap (in currency units) within
// which a pair still counts as matched.
const BalanceTolerance = 0.01

// allowedCodePrefixes are the chart-of-accounts prefixes eligible for
// counter-account reconciliation (customers, suppliers, consignment and
// advance accounts). Anything else is invisible to the engine.
var allowedCodePrefixes = map[string]struct{}{
	"120": {},
	"320": {},
	"159": {},
	"340": {},
	"336": {},
}

// ComparisonUseCase runs one full ledger-against-ledger comparison. It is a
// pure computation: no I/O, no shared state, deterministic for identical
// inputs up to the opaque result IDs.
type ComparisonUseCase struct {
	scorer similarity.Scorer
	newID  func() string
}

// NewComparisonUseCase creates a comparison usecase with UUID result ids.
func NewComparisonUseCase() *ComparisonUseCase {
	return &ComparisonUseCase{newID: uuid.NewString}
}

// Run matches the SMMM account list against the Firma list and diffs each
// matched pair's transactions.
//
// SMMM accounts are processed in their given order; each consumes at most one
// Firma account. Manual matches take precedence over scoring, and the
// assignment is greedy first-come rather than globally optimal: an earlier
// SMMM account may take a Firma account that would have scored higher against
// a later one. Input order is part of the contract.
func (uc *ComparisonUseCase) Run(smmmAccounts, firmaAccounts []domain.Account, manualMatches map[string]string) []domain.ComparisonResult {
	smmm := filterEligible(smmmAccounts)
	firma := filterEligible(firmaAccounts)

	consumed := make([]bool, len(firma))
	results := make([]domain.ComparisonResult, 0, len(smmm)+len(firma))

	for _, sa := range smmm {
		if target, ok := manualMatches[sa.Code]; ok {
			idx := -1
			for j := range firma {
				if !consumed[j] && firma[j].Code == target {
					idx = j
					break
				}
			}
			if idx < 0 {
				note := fmt.Sprintf("Manuel eşleştirme hedefi %s bulunamadı veya kullanımda", target)
				results = append(results, uc.unmatchedSmmm(sa, note))
				continue
			}
			consumed[idx] = true
			results = append(results, uc.buildPair(sa, firma[idx], 1.0, true))
			continue
		}

		bestIdx, bestScore := -1, 0.0
		for j := range firma {
			if consumed[j] {
				continue
			}
			// Strictly greater keeps the earliest-seen candidate on ties.
			if s := uc.scorer.Score(sa.Name, firma[j].Name); s > bestScore {
				bestIdx, bestScore = j, s
			}
		}
		if bestIdx < 0 || bestScore < MatchThreshold {
			results = append(results, uc.unmatchedSmmm(sa, ""))
			continue
		}
		consumed[bestIdx] = true
		results = append(results, uc.buildPair(sa, firma[bestIdx], bestScore, false))
	}

	for j := range firma {
		if !consumed[j] {
			fa := firma[j]
			results = append(results, domain.ComparisonResult{
				ID:                         uc.newID(),
				FirmaAccount:               &fa,
				Status:                     domain.StatusUnmatchedFirma,
				TransactionDiffRows:        []domain.TransactionDiffRow{},
				UnmatchedSmmmTransactions:  []domain.ComparableTransaction{},
				UnmatchedFirmaTransactions: domain.ToComparable(fa.Transactions),
				TransactionSummary: domain.TransactionSummary{
					FirmaTotal:  len(fa.Transactions),
					OnlyInFirma: len(fa.Transactions),
				},
			})
		}
	}

	sortResults(results)
	return results
}

func (uc *ComparisonUseCase) buildPair(sa, fa domain.Account, score float64, manual bool) domain.ComparisonResult {
	diff := DiffTransactions(sa.Transactions, fa.Transactions)

	balanceDiff := decimal.NewFromFloat(sa.Balance).Sub(decimal.NewFromFloat(fa.Balance))
	status := domain.StatusMatched
	// The balance is the authoritative signal: rows may still disagree while
	// the balances coincide, in which case the row diffs stay diagnostic.
	if balanceDiff.Abs().GreaterThan(decimal.NewFromFloat(BalanceTolerance)) {
		status = domain.StatusDifference
	}

	smmm, firma := sa, fa
	return domain.ComparisonResult{
		ID:                         uc.newID(),
		SmmmAccount:                &smmm,
		FirmaAccount:               &firma,
		Status:                     status,
		MatchScore:                 domain.Round2(score) * 100,
		IsManual:                   manual,
		Difference:                 round2Decimal(balanceDiff),
		DebitDifference:            diffOf(sa.TotalDebit, fa.TotalDebit),
		CreditDifference:           diffOf(sa.TotalCredit, fa.TotalCredit),
		TransactionSummary:         diff.Summary,
		TransactionDiffRows:        diff.Rows,
		UnmatchedSmmmTransactions:  diff.OnlyInSmmm,
		UnmatchedFirmaTransactions: diff.OnlyInFirma,
	}
}

func (uc *ComparisonUseCase) unmatchedSmmm(sa domain.Account, note string) domain.ComparisonResult {
	smmm := sa
	return domain.ComparisonResult{
		ID:                         uc.newID(),
		SmmmAccount:                &smmm,
		Status:                     domain.StatusUnmatchedSMMM,
		Notes:                      note,
		TransactionDiffRows:        []domain.TransactionDiffRow{},
		UnmatchedSmmmTransactions:  domain.ToComparable(sa.Transactions),
		UnmatchedFirmaTransactions: []domain.ComparableTransaction{},
		TransactionSummary: domain.TransactionSummary{
			SmmmTotal:  len(sa.Transactions),
			OnlyInSmmm: len(sa.Transactions),
		},
	}
}

// filterEligible keeps accounts whose code prefix is on the allow-list,
// preserving input order.
func filterEligible(accounts []domain.Account) []domain.Account {
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if _, ok := allowedCodePrefixes[codePrefix(a.Code)]; ok {
			out = append(out, a)
		}
	}
	return out
}

// codePrefix strips non-digits from an account code and truncates to the
// leading three digits: "120.01.003" → "120".
func codePrefix(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	return b.String()
}

// sortResults orders by status precedence, then locale-aware display name.
func sortResults(results []domain.ComparisonResult) {
	col := normalize.NewCollator()
	sort.SliceStable(results, func(i, j int) bool {
		pi, pj := results[i].Status.Precedence(), results[j].Status.Precedence()
		if pi != pj {
			return pi < pj
		}
		return col.CompareString(results[i].DisplayName(), results[j].DisplayName()) < 0
	})
}

func diffOf(a, b float64) float64 {
	return round2Decimal(decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)))
}

func round2Decimal(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
