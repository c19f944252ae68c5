package services

import (
	"testing"
	"time"

	"finbot/internal/models"
	"finbot/internal/pagination"
	"finbot/internal/testutil"
)

func TestSetBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)

		budget, err := svc.SetBudget(user.ID, "alimentação", 100000, 3, 2026)
		testutil.AssertNoError(t, err)

		if budget.ID == 0 {
			t.Fatal("expected non-zero budget ID")
		}
		if budget.Amount != 100000 {
			t.Errorf("expected amount 100000, got %d", budget.Amount)
		}
	})

	t.Run("setting_again_replaces_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)

		first, err := svc.SetBudget(user.ID, "alimentação", 100000, 3, 2026)
		testutil.AssertNoError(t, err)

		second, err := svc.SetBudget(user.ID, "alimentação", 80000, 3, 2026)
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected same budget row, got IDs %d and %d", first.ID, second.ID)
		}
		if second.Amount != 80000 {
			t.Errorf("expected updated amount 80000, got %d", second.Amount)
		}

		var count int64
		db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single budget row, got %d", count)
		}
	})

	t.Run("different_month_creates_new_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)

		first, err := svc.SetBudget(user.ID, "alimentação", 100000, 3, 2026)
		testutil.AssertNoError(t, err)
		second, err := svc.SetBudget(user.ID, "alimentação", 100000, 4, 2026)
		testutil.AssertNoError(t, err)

		if first.ID == second.ID {
			t.Error("expected separate budgets for separate months")
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.SetBudget(1, "", 100000, 3, 2026)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.SetBudget(1, "alimentação", 0, 3, 2026)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.SetBudget(1, "alimentação", 100000, 13, 2026)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("filters_by_month_and_year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "alimentação", 100000, 3, 2026)
		testutil.CreateTestBudget(t, db, user.ID, "transporte", 50000, 3, 2026)
		testutil.CreateTestBudget(t, db, user.ID, "alimentação", 100000, 4, 2026)

		month, year := 3, 2026
		page, err := svc.GetUserBudgets(user.ID, pagination.PageRequest{}, &month, &year)
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Errorf("expected 2 budgets for 3/2026, got %d", page.TotalItems)
		}
	})

	t.Run("excludes_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, "alimentação", 100000, 3, 2026)
		testutil.CreateTestBudget(t, db, other.ID, "alimentação", 100000, 3, 2026)

		page, err := svc.GetUserBudgets(user.ID, pagination.PageRequest{}, nil, nil)
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Errorf("expected 1 budget, got %d", page.TotalItems)
		}
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("deletes_own_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "alimentação", 100000, 3, 2026)

		testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

		_, err := svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("other_users_budget_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, other.ID, "alimentação", 100000, 3, 2026)

		err := svc.DeleteBudget(user.ID, budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestGetBudgetProgress(t *testing.T) {
	t.Run("sums_category_expenses_in_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		txs := NewTransactionService(db)

		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "alimentação", 100000, 3, 2026)

		inMonth := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		_, err := txs.CreateTransaction(user.ID, models.TransactionKindExpense, "alimentação", "", 30000, "mercado", inMonth)
		testutil.AssertNoError(t, err)
		_, err = txs.CreateTransaction(user.ID, models.TransactionKindExpense, "alimentação", "", 20000, "restaurante", inMonth)
		testutil.AssertNoError(t, err)

		// Outside the window, other category, and non-expense rows are ignored.
		_, err = txs.CreateTransaction(user.ID, models.TransactionKindExpense, "alimentação", "", 99900, "fora do mês", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)
		_, err = txs.CreateTransaction(user.ID, models.TransactionKindExpense, "transporte", "", 15000, "", inMonth)
		testutil.AssertNoError(t, err)
		_, err = txs.CreateTransaction(user.ID, models.TransactionKindIncome, "alimentação", "", 40000, "", inMonth)
		testutil.AssertNoError(t, err)

		progress, err := svc.GetBudgetProgress(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		if progress.Spent != 50000 {
			t.Errorf("expected spent 50000, got %d", progress.Spent)
		}
		if progress.Remaining != 50000 {
			t.Errorf("expected remaining 50000, got %d", progress.Remaining)
		}
		if progress.Percentage != 50 {
			t.Errorf("expected 50%%, got %.2f", progress.Percentage)
		}
	})

	t.Run("no_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, "lazer", 50000, 7, 2026)

		progress, err := svc.GetBudgetProgress(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		if progress.Spent != 0 || progress.Percentage != 0 {
			t.Errorf("expected zero progress, got spent=%d pct=%.2f", progress.Spent, progress.Percentage)
		}
		if progress.Remaining != 50000 {
			t.Errorf("expected remaining 50000, got %d", progress.Remaining)
		}
	})
}
