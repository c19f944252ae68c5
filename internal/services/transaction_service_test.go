package services

import (
	"testing"
	"time"

	"finbot/internal/models"
	"finbot/internal/pagination"
	"finbot/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateTransaction(user.ID, models.TransactionKindExpense, "Alimentação", "Mercado", 15050, "compras da semana", time.Now())
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Amount != 15050 {
			t.Errorf("expected amount 15050, got %d", tx.Amount)
		}
		if tx.Category != "Alimentação" {
			t.Errorf("expected category Alimentação, got %s", tx.Category)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, models.TransactionKindExpense, "Lazer", "", 0, "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, models.TransactionKindExpense, "", "", 1000, "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, models.TransactionKind("transfer"), "Outros", "", 1000, "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_KIND")
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateTransaction(user.ID, models.TransactionKindIncome, "Salário", "", 500000, "", time.Time{})
		testutil.AssertNoError(t, err)

		if tx.Date.IsZero() {
			t.Error("expected transaction date to default to now")
		}
	})
}

func TestGetUserTransactions(t *testing.T) {
	t.Run("filters_by_kind_and_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)
		now := time.Now()

		testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindExpense, 1000, now)
		testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindExpense, 2000, now.AddDate(0, 0, -40))
		testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindIncome, 3000, now)

		from := now.AddDate(0, 0, -7)
		kind := models.TransactionKindExpense
		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{FromDate: &from, Kind: &kind})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(page.Data))
		}
		if page.Data[0].Amount != 1000 {
			t.Errorf("expected amount 1000, got %d", page.Data[0].Amount)
		}
	})

	t.Run("excludes_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, other.ID, models.TransactionKindExpense, 5000)

		page, err := svc.GetUserTransactions(owner.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 0 {
			t.Errorf("expected no transactions for owner, got %d", len(page.Data))
		}
	})
}

func TestTransactionsSince(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)

	user := testutil.CreateTestUser(t, db)
	now := time.Now()

	testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindExpense, 1000, now.AddDate(0, 0, -10))
	testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindExpense, 2000, now.AddDate(0, 0, -100))

	txs, err := svc.TransactionsSince(user.ID, now.AddDate(0, 0, -90))
	testutil.AssertNoError(t, err)

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction in window, got %d", len(txs))
	}
	if txs[0].Amount != 1000 {
		t.Errorf("expected amount 1000, got %d", txs[0].Amount)
	}
}

func TestGetBalance(t *testing.T) {
	t.Run("income_minus_outflows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionKindIncome, 500000)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionKindExpense, 120000)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionKindInvestment, 80000)

		balance, err := svc.GetBalance(user.ID)
		testutil.AssertNoError(t, err)

		if balance != 300000 {
			t.Errorf("expected balance 300000, got %d", balance)
		}
	})

	t.Run("no_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)

		balance, err := svc.GetBalance(user.ID)
		testutil.AssertNoError(t, err)

		if balance != 0 {
			t.Errorf("expected zero balance, got %d", balance)
		}
	})
}

func TestGetMonthlySummary(t *testing.T) {
	t.Run("aggregates_by_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)
		inMonth := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
		outOfMonth := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

		testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindIncome, 500000, inMonth)
		testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindExpense, 150000, inMonth)
		testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionKindExpense, 99999, outOfMonth)

		summary, err := svc.GetMonthlySummary(user.ID, 2026, 3)
		testutil.AssertNoError(t, err)

		if summary.Income != 500000 {
			t.Errorf("expected income 500000, got %d", summary.Income)
		}
		if summary.Expenses != 150000 {
			t.Errorf("expected expenses 150000, got %d", summary.Expenses)
		}
		if summary.Count != 2 {
			t.Errorf("expected 2 transactions, got %d", summary.Count)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.GetMonthlySummary(1, 2026, 13)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("removes_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionKindExpense, 2500)

		err := svc.DeleteTransaction(user.ID, tx.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetTransactionByID(user.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("other_users_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, owner.ID, models.TransactionKindExpense, 2500)

		err := svc.DeleteTransaction(other.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
