package exchange

import (
	"bytes"
	"testing"
	"time"

	"finbot/internal/models"
	"finbot/internal/services"
	"finbot/internal/testutil"
)

func TestBackupRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	txSvc := services.NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)

	deadline := time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{
			Base:     models.Base{ID: 1},
			Kind:     models.TransactionKindIncome,
			Category: "Salário",
			Amount:   350000,
			Date:     time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
	}
	goals := []models.Goal{
		{
			Base:          models.Base{ID: 1},
			Title:         "Viagem",
			TargetAmount:  500000,
			CurrentAmount: 120000,
			Deadline:      &deadline,
			Status:        models.GoalStatusActive,
		},
	}

	var buf bytes.Buffer
	err := WriteBackup(&buf, user.ID, transactions, goals)
	testutil.AssertNoError(t, err)

	backup, err := ReadBackup(&buf)
	testutil.AssertNoError(t, err)

	if backup.UserID != user.ID {
		t.Errorf("expected user ID %d, got %d", user.ID, backup.UserID)
	}
	if len(backup.Transactions) != 1 || len(backup.Goals) != 1 {
		t.Fatalf("expected 1 transaction and 1 goal, got %d and %d", len(backup.Transactions), len(backup.Goals))
	}
	if backup.Transactions[0].Amount != "3500.00" {
		t.Errorf("expected amount 3500.00, got %s", backup.Transactions[0].Amount)
	}
	if backup.Goals[0].Deadline != "2027-06-01" {
		t.Errorf("expected deadline 2027-06-01, got %s", backup.Goals[0].Deadline)
	}

	result, err := RestoreTransactions(backup, txSvc, user.ID)
	testutil.AssertNoError(t, err)
	if result.Imported != 1 {
		t.Fatalf("expected 1 restored transaction, got %d (errors: %v)", result.Imported, result.Errors)
	}

	stored, err := txSvc.ListTransactions(user.ID, services.TransactionFilter{})
	testutil.AssertNoError(t, err)
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(stored))
	}
	if stored[0].Amount != 350000 {
		t.Errorf("expected amount 350000, got %d", stored[0].Amount)
	}
}

func TestRestoreTransactionsSkipsBadEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	txSvc := services.NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)

	backup := &Backup{
		UserID: user.ID,
		Transactions: []BackupTransaction{
			{Kind: "expense", Category: "Lazer", Amount: "20.00", Date: "2026-01-10"},
			{Kind: "mystery", Category: "Outros", Amount: "5.00", Date: "2026-01-11"},
		},
	}

	result, err := RestoreTransactions(backup, txSvc, user.ID)
	testutil.AssertNoError(t, err)

	if result.Imported != 1 {
		t.Errorf("expected 1 imported, got %d", result.Imported)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %v", result.Errors)
	}
}
