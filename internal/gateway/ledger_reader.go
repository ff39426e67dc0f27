package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
)

// ColumnMap gives the zero-based column position of each ledger field, plus
// the number of leading header rows to skip. It is the programmatic face of
// the interactive column-mapping step, which stays outside this module.
type ColumnMap struct {
	Code        int
	Name        int
	Date        int
	Description int
	VoucherNo   int
	Debit       int
	Credit      int
	Balance     int
	HeaderRows  int
}

// DefaultColumnMap matches the common cari ekstre export layout.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		Code:        0,
		Name:        1,
		Date:        2,
		Description: 3,
		VoucherNo:   4,
		Debit:       5,
		Credit:      6,
		Balance:     7,
		HeaderRows:  1,
	}
}

// LedgerReader loads one side's account list from a ledger export file.
// Rows sharing an account code are grouped into one account; rows with an
// empty code cell continue the current account. Malformed cells degrade to
// zero values instead of failing the load: data problems are reconciliation
// findings, not parse errors.
type LedgerReader struct {
	cols ColumnMap
}

// NewLedgerReader creates a reader with the given column layout.
func NewLedgerReader(cols ColumnMap) *LedgerReader {
	return &LedgerReader{cols: cols}
}

// ReadAccounts parses a .xlsx, .xls or .csv ledger export. CSV files are
// decoded as Windows-1254, the code page Turkish accounting exports use.
func (r *LedgerReader) ReadAccounts(ctx context.Context, path string) ([]domain.Account, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".xls":
		rows, err = readXLS(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported ledger file type: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file %s: %w", path, err)
	}
	if r.cols.HeaderRows < len(rows) {
		rows = rows[r.cols.HeaderRows:]
	} else {
		rows = nil
	}
	return r.groupAccounts(rows), nil
}

func (r *LedgerReader) groupAccounts(rows [][]string) []domain.Account {
	var accounts []domain.Account
	var current *domain.Account
	var totalDebit, totalCredit decimal.Decimal
	var lastBalance *float64

	flush := func() {
		if current == nil {
			return
		}
		current.TotalDebit, _ = totalDebit.Round(2).Float64()
		current.TotalCredit, _ = totalCredit.Round(2).Float64()
		if lastBalance != nil {
			current.Balance = *lastBalance
		} else {
			current.Balance, _ = totalDebit.Sub(totalCredit).Round(2).Float64()
		}
		accounts = append(accounts, *current)
	}

	for _, row := range rows {
		code := strings.TrimSpace(cell(row, r.cols.Code))
		if code != "" && (current == nil || code != current.Code) {
			flush()
			current = &domain.Account{
				Code: code,
				Name: strings.TrimSpace(cell(row, r.cols.Name)),
			}
			totalDebit, totalCredit = decimal.Zero, decimal.Zero
			lastBalance = nil
		}
		if current == nil {
			// Transaction rows before any account header have no home.
			continue
		}

		tx := domain.Transaction{
			Date:        parseDate(cell(row, r.cols.Date)),
			Debit:       parseAmount(cell(row, r.cols.Debit)),
			Credit:      parseAmount(cell(row, r.cols.Credit)),
			Description: strings.TrimSpace(cell(row, r.cols.Description)),
			VoucherNo:   strings.TrimSpace(cell(row, r.cols.VoucherNo)),
		}
		if bal := strings.TrimSpace(cell(row, r.cols.Balance)); bal != "" {
			v := parseAmount(bal)
			tx.Balance = v
			lastBalance = &v
		}
		if tx.Date.IsZero() && tx.Debit == 0 && tx.Credit == 0 && tx.Description == "" {
			// Header-only row for the account, not a transaction.
			continue
		}
		current.Transactions = append(current.Transactions, tx)
		totalDebit = totalDebit.Add(decimal.NewFromFloat(tx.Debit))
		totalCredit = totalCredit.Add(decimal.NewFromFloat(tx.Credit))
	}
	flush()
	return accounts
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readXLS(path string) ([][]string, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, err
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for i := 0; i < int(sheet.GetNumberRows()); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		cols := row.GetCols()
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = c.GetString()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(transform.NewReader(file, charmap.Windows1254.NewDecoder()))
	reader.FieldsPerRecord = -1
	reader.Comma = ';'

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseAmount reads "1.234,56" (Turkish), "1,234.56" and "1234.56" alike.
// Whichever of comma and dot appears last is taken as the decimal separator.
// Unparseable cells are worth 0.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0
	}
	ci := strings.LastIndex(s, ",")
	di := strings.LastIndex(s, ".")
	switch {
	case ci >= 0 && di >= 0 && ci > di:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case ci >= 0 && di >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case ci >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

var dateLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	"02/01/2006",
	"2.1.2006",
	"02-01-2006",
	"01-02-06", // excelize's default date display format
}

// parseDate returns the zero time for anything it cannot read; downstream
// that degrades to the undated bucket instead of an error.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
