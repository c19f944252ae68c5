// Package exchange moves financial data across file formats: CSV and JSON
// for import/export, PDF for printable reports.
package exchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
)

// csvDateLayout is the DD-MM-YYYY format used in exported files.
const csvDateLayout = "02-01-2006"

var transactionHeader = []string{"ID", "Tipo", "Categoria", "Subcategoria", "Valor", "Descrição", "Data"}
var goalHeader = []string{"ID", "Título", "Valor Alvo", "Valor Atual", "Prazo", "Status"}

var kindLabels = map[models.TransactionKind]string{
	models.TransactionKindIncome:     "Receita",
	models.TransactionKindExpense:    "Despesa",
	models.TransactionKindInvestment: "Investimento",
}

var labelKinds = map[string]models.TransactionKind{
	"receita":      models.TransactionKindIncome,
	"despesa":      models.TransactionKindExpense,
	"investimento": models.TransactionKindInvestment,
	"income":       models.TransactionKindIncome,
	"expense":      models.TransactionKindExpense,
	"investment":   models.TransactionKindInvestment,
}

var hundred = decimal.NewFromInt(100)

// centsToDecimalString renders an amount in cents as a plain decimal, "150.50".
func centsToDecimalString(cents int64) string {
	return decimal.NewFromInt(cents).Div(hundred).StringFixed(2)
}

// decimalStringToCents parses a decimal amount, "150.50", into cents.
func decimalStringToCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// WriteTransactionsCSV writes transactions in the exported CSV layout.
func WriteTransactionsCSV(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(transactionHeader); err != nil {
		return apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	for _, tx := range transactions {
		record := []string{
			strconv.FormatUint(uint64(tx.ID), 10),
			kindLabels[tx.Kind],
			tx.Category,
			tx.Subcategory,
			centsToDecimalString(tx.Amount),
			tx.Description,
			tx.Date.Format(csvDateLayout),
		}
		if err := cw.Write(record); err != nil {
			return apperrors.Wrap(apperrors.ErrExportFailed, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrExportFailed, err)
	}
	return nil
}

// WriteGoalsCSV writes goals in the exported CSV layout.
func WriteGoalsCSV(w io.Writer, goals []models.Goal) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(goalHeader); err != nil {
		return apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	for _, goal := range goals {
		deadline := ""
		if goal.Deadline != nil {
			deadline = goal.Deadline.Format(csvDateLayout)
		}
		record := []string{
			strconv.FormatUint(uint64(goal.ID), 10),
			goal.Title,
			centsToDecimalString(goal.TargetAmount),
			centsToDecimalString(goal.CurrentAmount),
			deadline,
			string(goal.Status),
		}
		if err := cw.Write(record); err != nil {
			return apperrors.Wrap(apperrors.ErrExportFailed, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrExportFailed, err)
	}
	return nil
}

// TransactionWriter records imported transactions.
type TransactionWriter interface {
	CreateTransaction(userID uint, kind models.TransactionKind, category, subcategory string, amount int64, description string, date time.Time) (*models.Transaction, error)
}

// ImportResult reports the outcome of a CSV import: how many rows were
// recorded and a message per rejected row.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportTransactionsCSV reads the exported CSV layout and records each row
// for the user. Bad rows are skipped and reported, the rest still import.
func ImportTransactionsCSV(r io.Reader, writer TransactionWriter, userID uint) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrImportFailed, err)
	}
	cols := columnIndex(header)
	for _, required := range []string{"Tipo", "Categoria", "Valor", "Data"} {
		if _, ok := cols[required]; !ok {
			return nil, apperrors.WithMessage(apperrors.ErrImportFailed, fmt.Sprintf("missing column %q", required))
		}
	}

	result := &ImportResult{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("linha %d: %v", line, err))
			continue
		}

		if err := importRow(record, cols, writer, userID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("linha %d: %v", line, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func importRow(record []string, cols map[string]int, writer TransactionWriter, userID uint) error {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	kind, ok := labelKinds[strings.ToLower(strings.TrimSpace(field("Tipo")))]
	if !ok {
		return fmt.Errorf("tipo desconhecido %q", field("Tipo"))
	}

	amount, err := decimalStringToCents(field("Valor"))
	if err != nil {
		return fmt.Errorf("valor inválido %q", field("Valor"))
	}

	date, err := time.Parse(csvDateLayout, strings.TrimSpace(field("Data")))
	if err != nil {
		return fmt.Errorf("data inválida %q", field("Data"))
	}

	_, err = writer.CreateTransaction(userID, kind, field("Categoria"), field("Subcategoria"), amount, field("Descrição"), date)
	return err
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}
