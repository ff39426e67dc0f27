package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/usecase"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func tx(date time.Time, debit, credit float64, desc string) domain.Transaction {
	return domain.Transaction{Date: date, Debit: debit, Credit: credit, Description: desc}
}

func TestDiffTransactions(t *testing.T) {
	t.Run("identical sides fully match", func(t *testing.T) {
		rows := []domain.Transaction{
			tx(day(1), 100, 0, "fatura"),
			tx(day(2), 0, 50, "tahsilat"),
		}
		diff := usecase.DiffTransactions(rows, rows)

		assert.Equal(t, domain.TransactionSummary{
			SmmmTotal: 2, FirmaTotal: 2, Matched: 2,
		}, diff.Summary)
		assert.Empty(t, diff.Rows)
		assert.Empty(t, diff.OnlyInSmmm)
		assert.Empty(t, diff.OnlyInFirma)
	})

	t.Run("description and voucher never affect matching", func(t *testing.T) {
		smmm := []domain.Transaction{tx(day(1), 100, 0, "fatura no 12")}
		firma := []domain.Transaction{{Date: day(1), Debit: 100, VoucherNo: "XYZ", Description: "something else"}}
		diff := usecase.DiffTransactions(smmm, firma)

		assert.Equal(t, 1, diff.Summary.Matched)
		assert.Empty(t, diff.Rows)
	})

	t.Run("surplus rows come from the front of the bucket", func(t *testing.T) {
		smmm := []domain.Transaction{
			tx(day(1), 100, 0, "a"),
			tx(day(1), 100, 0, "b"),
			tx(day(1), 100, 0, "c"),
		}
		firma := []domain.Transaction{tx(day(1), 100, 0, "x")}
		diff := usecase.DiffTransactions(smmm, firma)

		assert.Equal(t, domain.TransactionSummary{
			SmmmTotal: 3, FirmaTotal: 1, Matched: 1, OnlyInSmmm: 2,
		}, diff.Summary)
		assert.Len(t, diff.OnlyInSmmm, 2)
		assert.Equal(t, "a", diff.OnlyInSmmm[0].Description)
		assert.Equal(t, "b", diff.OnlyInSmmm[1].Description)

		assert.Len(t, diff.Rows, 1)
		assert.Equal(t, domain.TransactionDiffRow{
			DateKey: "2024-01-01", Debit: 100, Credit: 0,
			SmmmCount: 3, FirmaCount: 1, OnlyInSmmm: 2,
		}, diff.Rows[0])
	})

	t.Run("rows sort by date then debit then credit with undated last", func(t *testing.T) {
		smmm := []domain.Transaction{
			tx(time.Time{}, 5, 0, "undated"),
			tx(day(2), 10, 0, "later"),
			tx(day(1), 20, 0, "bigger"),
			tx(day(1), 10, 0, "earlier"),
		}
		diff := usecase.DiffTransactions(smmm, nil)

		assert.Len(t, diff.Rows, 4)
		assert.Equal(t, "2024-01-01", diff.Rows[0].DateKey)
		assert.Equal(t, 10.0, diff.Rows[0].Debit)
		assert.Equal(t, "2024-01-01", diff.Rows[1].DateKey)
		assert.Equal(t, 20.0, diff.Rows[1].Debit)
		assert.Equal(t, "2024-01-02", diff.Rows[2].DateKey)
		assert.Equal(t, "TARIHSIZ", diff.Rows[3].DateKey)

		// Unmatched lists sort by date too.
		assert.Equal(t, "TARIHSIZ", diff.OnlyInSmmm[3].DateKey)
	})

	t.Run("summary identities hold", func(t *testing.T) {
		smmm := []domain.Transaction{
			tx(day(1), 100, 0, ""),
			tx(day(1), 100, 0, ""),
			tx(day(3), 0, 70, ""),
		}
		firma := []domain.Transaction{
			tx(day(1), 100, 0, ""),
			tx(day(5), 40, 0, ""),
		}
		diff := usecase.DiffTransactions(smmm, firma)

		s := diff.Summary
		assert.Equal(t, s.SmmmTotal, s.Matched+s.OnlyInSmmm)
		assert.Equal(t, s.FirmaTotal, s.Matched+s.OnlyInFirma)
		assert.Len(t, diff.OnlyInSmmm, s.OnlyInSmmm)
		assert.Len(t, diff.OnlyInFirma, s.OnlyInFirma)
	})

	t.Run("two decimal rounding folds near-equal amounts together", func(t *testing.T) {
		smmm := []domain.Transaction{tx(day(1), 99.999, 0, "")}
		firma := []domain.Transaction{tx(day(1), 100.001, 0, "")}
		diff := usecase.DiffTransactions(smmm, firma)

		assert.Equal(t, 1, diff.Summary.Matched)
		assert.Empty(t, diff.Rows)
	})
}
