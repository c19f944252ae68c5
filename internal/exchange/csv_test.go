package exchange

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"finbot/internal/models"
	"finbot/internal/services"
	"finbot/internal/testutil"
)

func TestWriteTransactionsCSV(t *testing.T) {
	date := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{
			Base:        models.Base{ID: 7},
			Kind:        models.TransactionKindExpense,
			Category:    "Alimentação",
			Subcategory: "Mercado",
			Amount:      15050,
			Description: "compras",
			Date:        date,
		},
	}

	var buf bytes.Buffer
	err := WriteTransactionsCSV(&buf, transactions)
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Tipo,Categoria,Subcategoria,Valor,Descrição,Data" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "7,Despesa,Alimentação,Mercado,150.50,compras,05-03-2026" {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestImportTransactionsCSV(t *testing.T) {
	t.Run("valid_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := services.NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		input := "ID,Tipo,Categoria,Subcategoria,Valor,Descrição,Data\n" +
			"1,Despesa,Transporte,,42.90,ônibus,10-01-2026\n" +
			"2,Receita,Salário,,3500.00,,01-01-2026\n"

		result, err := ImportTransactionsCSV(strings.NewReader(input), svc, user.ID)
		testutil.AssertNoError(t, err)

		if result.Imported != 2 {
			t.Fatalf("expected 2 imported, got %d (errors: %v)", result.Imported, result.Errors)
		}

		txs, err := svc.ListTransactions(user.ID, services.TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(txs) != 2 {
			t.Fatalf("expected 2 stored transactions, got %d", len(txs))
		}
	})

	t.Run("bad_rows_skipped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := services.NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		input := "ID,Tipo,Categoria,Subcategoria,Valor,Descrição,Data\n" +
			"1,Despesa,Transporte,,não-é-número,,10-01-2026\n" +
			"2,Despesa,Lazer,,20.00,,15-01-2026\n"

		result, err := ImportTransactionsCSV(strings.NewReader(input), svc, user.ID)
		testutil.AssertNoError(t, err)

		if result.Imported != 1 {
			t.Errorf("expected 1 imported, got %d", result.Imported)
		}
		if len(result.Errors) != 1 {
			t.Fatalf("expected 1 error, got %v", result.Errors)
		}
		if !strings.Contains(result.Errors[0], "linha 2") {
			t.Errorf("expected error to name the line, got %q", result.Errors[0])
		}
	})

	t.Run("missing_required_column", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := services.NewTransactionService(db)

		input := "ID,Categoria,Valor,Data\n1,Lazer,10.00,10-01-2026\n"

		_, err := ImportTransactionsCSV(strings.NewReader(input), svc, 1)
		testutil.AssertAppError(t, err, "IMPORT_FAILED")
	})
}

func TestDecimalStringToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"150.50", 15050},
		{"0.01", 1},
		{"3500", 350000},
		{" 42.90 ", 4290},
	}
	for _, tc := range cases {
		got, err := decimalStringToCents(tc.in)
		testutil.AssertNoError(t, err)
		if got != tc.want {
			t.Errorf("decimalStringToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if _, err := decimalStringToCents("abc"); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}
