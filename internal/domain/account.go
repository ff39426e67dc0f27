package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/normalize"
)

// Side identifies which ledger produced a row.
type Side string

const (
	// SideSMMM is the external accountant's ledger.
	SideSMMM Side = "SMMM"
	// SideFirma is the company's own ledger.
	SideFirma Side = "FIRMA"
)

// Account is one counter-party sub-ledger account as parsed from a ledger
// file. Immutable for the duration of a comparison run.
type Account struct {
	Code         string        `json:"code"`
	Name         string        `json:"name"`
	Balance      float64       `json:"balance"`
	TotalDebit   float64       `json:"totalDebit"`
	TotalCredit  float64       `json:"totalCredit"`
	Transactions []Transaction `json:"transactions"`
}

// Transaction is one ledger row. A zero Date means the source cell was
// missing or unreadable. Fx fields are pass-through display data for
// foreign-currency rows; the engine never computes with them.
type Transaction struct {
	Date         time.Time `json:"date"`
	Debit        float64   `json:"debit"`
	Credit       float64   `json:"credit"`
	Balance      float64   `json:"balance,omitempty"`
	Description  string    `json:"description,omitempty"`
	VoucherNo    string    `json:"voucherNo,omitempty"`
	CurrencyCode string    `json:"currencyCode,omitempty"`
	ExchangeRate float64   `json:"exchangeRate,omitempty"`
	FxDebit      float64   `json:"fxDebit,omitempty"`
	FxCredit     float64   `json:"fxCredit,omitempty"`
	FxBalance    float64   `json:"fxBalance,omitempty"`
}

// ComparableTransaction is the normalized projection used for row matching.
// Two rows are the same iff their (DateKey, debit cents, credit cents) triple
// is equal; Description and VoucherNo ride along for display only.
type ComparableTransaction struct {
	DateKey     string  `json:"date"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Description string  `json:"description,omitempty"`
	VoucherNo   string  `json:"voucherNo,omitempty"`
}

// NewComparable projects a ledger row for matching, rounding amounts to two
// decimals and collapsing the date to its bucket key.
func NewComparable(t Transaction) ComparableTransaction {
	return ComparableTransaction{
		DateKey:     normalize.FormatDateKey(t.Date),
		Debit:       Round2(t.Debit),
		Credit:      Round2(t.Credit),
		Description: t.Description,
		VoucherNo:   t.VoucherNo,
	}
}

// ToComparable projects a whole transaction list, preserving input order.
func ToComparable(txs []Transaction) []ComparableTransaction {
	out := make([]ComparableTransaction, len(txs))
	for i, t := range txs {
		out[i] = NewComparable(t)
	}
	return out
}

// MatchKey is the exact multiset bucket key: date|debitCents|creditCents.
func (c ComparableTransaction) MatchKey() string {
	return fmt.Sprintf("%s|%d|%d", c.DateKey, Cents(c.Debit), Cents(c.Credit))
}

// Cents quantizes an amount to integer kuruş. Going through decimal avoids
// the usual float64 drift around .005 boundaries.
func Cents(v float64) int64 {
	return decimal.NewFromFloat(v).Round(2).Shift(2).IntPart()
}

// Round2 rounds an amount to two decimals, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
