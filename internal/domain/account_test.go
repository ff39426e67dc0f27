package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
)

func TestNewComparable(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	got := domain.NewComparable(domain.Transaction{
		Date:        date,
		Debit:       100.105,
		Credit:      0,
		Description: "Fatura",
		VoucherNo:   "F-12",
	})
	assert.Equal(t, domain.ComparableTransaction{
		DateKey:     "2024-03-15",
		Debit:       100.11,
		Credit:      0,
		Description: "Fatura",
		VoucherNo:   "F-12",
	}, got)

	undated := domain.NewComparable(domain.Transaction{Debit: 50})
	assert.Equal(t, "TARIHSIZ", undated.DateKey)
}

func TestMatchKey(t *testing.T) {
	row := domain.ComparableTransaction{DateKey: "2024-03-15", Debit: 100.10, Credit: 0}
	assert.Equal(t, "2024-03-15|10010|0", row.MatchKey())

	undated := domain.ComparableTransaction{DateKey: "TARIHSIZ", Debit: 0, Credit: 12.34}
	assert.Equal(t, "TARIHSIZ|0|1234", undated.MatchKey())
}

func TestCentsAndRound2(t *testing.T) {
	assert.Equal(t, int64(123456), domain.Cents(1234.56))
	assert.Equal(t, int64(-50), domain.Cents(-0.5))
	assert.Equal(t, int64(1001), domain.Cents(10.005))

	assert.Equal(t, 1.01, domain.Round2(1.005))
	assert.Equal(t, -0.02, domain.Round2(-0.015))
	assert.Equal(t, 0.0, domain.Round2(0))
}

func TestPairScopeKey(t *testing.T) {
	assert.Equal(t, "120.01::320.05", domain.PairScopeKey("120.01", "320.05"))
	assert.Equal(t, "120.01::NONE", domain.PairScopeKey("120.01", ""))
	assert.Equal(t, "NONE::320.05", domain.PairScopeKey("", "320.05"))
}

func TestReviewKeyFor(t *testing.T) {
	row := domain.ComparableTransaction{DateKey: "2024-01-31", Debit: 10, Credit: 0}
	key := domain.ReviewKeyFor("120.01::320.05", domain.SideSMMM, row, 2)
	assert.Equal(t, "120.01::320.05|SMMM|2024-01-31|1000|0|2", key)

	undated := domain.ComparableTransaction{DateKey: "TARIHSIZ"}
	key = domain.ReviewKeyFor(domain.PairScopeKey("120.01", ""), domain.SideFirma, undated, 0)
	assert.Equal(t, "120.01::NONE|FIRMA|TARIHSIZ|0|0|0", key)
}
