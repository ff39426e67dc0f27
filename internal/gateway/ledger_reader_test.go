package gateway_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/gateway"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	// Ledger exports arrive in the Turkish Windows code page.
	encoded, err := charmap.Windows1254.NewEncoder().String(content)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ekstre.csv")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))
	return path
}

func TestReadAccountsCSV(t *testing.T) {
	content := "Kod;Unvan;Tarih;Aciklama;Belge No;Borc;Alacak;Bakiye\n" +
		"120.01;ÇİĞDEM TEKSTİL;15.03.2024;Fatura;F-1;1.234,56;0,00;1.234,56\n" +
		";;20.03.2024;Tahsilat;T-1;0,00;234,56;1.000,00\n" +
		"320.05;BETA GIDA;;Devir;;100,00;0,00;100,00\n"

	reader := gateway.NewLedgerReader(gateway.DefaultColumnMap())
	accounts, err := reader.ReadAccounts(context.Background(), writeCSV(t, content))
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	first := accounts[0]
	assert.Equal(t, "120.01", first.Code)
	assert.Equal(t, "ÇİĞDEM TEKSTİL", first.Name)
	assert.Equal(t, 1234.56, first.TotalDebit)
	assert.Equal(t, 234.56, first.TotalCredit)
	// The last balance cell wins over the computed running total.
	assert.Equal(t, 1000.00, first.Balance)
	require.Len(t, first.Transactions, 2)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), first.Transactions[0].Date)
	assert.Equal(t, 1234.56, first.Transactions[0].Debit)
	assert.Equal(t, "Fatura", first.Transactions[0].Description)
	assert.Equal(t, "F-1", first.Transactions[0].VoucherNo)
	assert.Equal(t, 234.56, first.Transactions[1].Credit)

	second := accounts[1]
	assert.Equal(t, "320.05", second.Code)
	assert.Equal(t, "BETA GIDA", second.Name)
	require.Len(t, second.Transactions, 1)
	assert.True(t, second.Transactions[0].Date.IsZero())
	assert.Equal(t, 100.00, second.Balance)
}

func TestReadAccountsLenientCells(t *testing.T) {
	content := "Kod;Unvan;Tarih;Aciklama;Belge No;Borc;Alacak;Bakiye\n" +
		"120.01;ACME;bozuk-tarih;Fatura;;abc;50,00;\n"

	reader := gateway.NewLedgerReader(gateway.DefaultColumnMap())
	accounts, err := reader.ReadAccounts(context.Background(), writeCSV(t, content))
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	acc := accounts[0]
	require.Len(t, acc.Transactions, 1)
	// Malformed cells degrade instead of failing the load.
	assert.True(t, acc.Transactions[0].Date.IsZero())
	assert.Equal(t, 0.0, acc.Transactions[0].Debit)
	assert.Equal(t, 50.0, acc.Transactions[0].Credit)
	// No balance column: computed from the rows.
	assert.Equal(t, -50.0, acc.Balance)
}

func TestReadAccountsAmountFormats(t *testing.T) {
	content := "Kod;Unvan;Tarih;Aciklama;Belge No;Borc;Alacak;Bakiye\n" +
		"120.01;ACME;15.03.2024;tr binlik;;12.345,67;0;\n" +
		";;16.03.2024;us binlik;;1,234.50;0;\n" +
		";;17.03.2024;duz;;99.95;0;\n"

	reader := gateway.NewLedgerReader(gateway.DefaultColumnMap())
	accounts, err := reader.ReadAccounts(context.Background(), writeCSV(t, content))
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	txs := accounts[0].Transactions
	require.Len(t, txs, 3)
	assert.Equal(t, 12345.67, txs[0].Debit)
	assert.Equal(t, 1234.50, txs[1].Debit)
	assert.Equal(t, 99.95, txs[2].Debit)
}

func TestReadAccountsUnsupportedExtension(t *testing.T) {
	reader := gateway.NewLedgerReader(gateway.DefaultColumnMap())
	_, err := reader.ReadAccounts(context.Background(), "ledger.pdf")
	assert.Error(t, err)
}
