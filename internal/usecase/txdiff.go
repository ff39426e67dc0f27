package usecase

import (
	"sort"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
)

// TransactionDiff is the multiset difference between the two sides of one
// matched account pair.
type TransactionDiff struct {
	Summary     domain.TransactionSummary
	Rows        []domain.TransactionDiffRow
	OnlyInSmmm  []domain.ComparableTransaction
	OnlyInFirma []domain.ComparableTransaction
}

// DiffTransactions buckets both sides' rows by their exact
// date|debitCents|creditCents key and pairs them off per bucket. Rows inside
// a bucket are indistinguishable by the matching key, so which surplus rows
// get reported is arbitrary; the first ones in input order are used to keep
// the output stable.
func DiffTransactions(smmmTxs, firmaTxs []domain.Transaction) TransactionDiff {
	smmm := domain.ToComparable(smmmTxs)
	firma := domain.ToComparable(firmaTxs)

	type bucket struct {
		smmm  []domain.ComparableTransaction
		firma []domain.ComparableTransaction
	}
	buckets := make(map[string]*bucket)
	// First-seen key order keeps the whole computation deterministic; a map
	// range here would shuffle rows that tie on the sort keys.
	var keys []string
	get := func(key string) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
			keys = append(keys, key)
		}
		return b
	}
	for _, t := range smmm {
		b := get(t.MatchKey())
		b.smmm = append(b.smmm, t)
	}
	for _, t := range firma {
		b := get(t.MatchKey())
		b.firma = append(b.firma, t)
	}

	diff := TransactionDiff{
		Rows:        []domain.TransactionDiffRow{},
		OnlyInSmmm:  []domain.ComparableTransaction{},
		OnlyInFirma: []domain.ComparableTransaction{},
		Summary: domain.TransactionSummary{
			SmmmTotal:  len(smmm),
			FirmaTotal: len(firma),
		},
	}

	for _, key := range keys {
		b := buckets[key]
		matched := len(b.smmm)
		if len(b.firma) < matched {
			matched = len(b.firma)
		}
		onlySmmm := len(b.smmm) - matched
		onlyFirma := len(b.firma) - matched

		diff.Summary.Matched += matched
		diff.Summary.OnlyInSmmm += onlySmmm
		diff.Summary.OnlyInFirma += onlyFirma
		diff.OnlyInSmmm = append(diff.OnlyInSmmm, b.smmm[:onlySmmm]...)
		diff.OnlyInFirma = append(diff.OnlyInFirma, b.firma[:onlyFirma]...)

		if onlySmmm == 0 && onlyFirma == 0 {
			continue
		}
		rep := b.smmm
		if len(rep) == 0 {
			rep = b.firma
		}
		diff.Rows = append(diff.Rows, domain.TransactionDiffRow{
			DateKey:     rep[0].DateKey,
			Debit:       rep[0].Debit,
			Credit:      rep[0].Credit,
			SmmmCount:   len(b.smmm),
			FirmaCount:  len(b.firma),
			OnlyInSmmm:  onlySmmm,
			OnlyInFirma: onlyFirma,
		})
	}

	sort.Slice(diff.Rows, func(i, j int) bool {
		a, b := diff.Rows[i], diff.Rows[j]
		if a.DateKey != b.DateKey {
			return a.DateKey < b.DateKey
		}
		if a.Debit != b.Debit {
			return a.Debit < b.Debit
		}
		return a.Credit < b.Credit
	})
	sortByDate(diff.OnlyInSmmm)
	sortByDate(diff.OnlyInFirma)
	return diff
}

// sortByDate orders unmatched rows by date key ascending; the TARIHSIZ
// sentinel sorts after all real dates.
func sortByDate(rows []domain.ComparableTransaction) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DateKey < rows[j].DateKey
	})
}
