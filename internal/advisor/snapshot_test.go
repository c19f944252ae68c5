package advisor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"finbot/internal/models"
)

// fakeGateway serves canned data and records the window it was asked for.
type fakeGateway struct {
	transactions []models.Transaction
	goals        []models.Goal
	since        time.Time
	txErr        error
	goalErr      error
}

func (f *fakeGateway) TransactionsSince(_ uint, since time.Time) ([]models.Transaction, error) {
	f.since = since
	return f.transactions, f.txErr
}

func (f *fakeGateway) Goals(_ uint, status *models.GoalStatus) ([]models.Goal, error) {
	if f.goalErr != nil {
		return nil, f.goalErr
	}
	if status == nil {
		return f.goals, nil
	}
	var filtered []models.Goal
	for _, g := range f.goals {
		if g.Status == *status {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

func tx(kind models.TransactionKind, category string, amount int64) models.Transaction {
	return models.Transaction{Kind: kind, Category: category, Amount: amount}
}

func TestBuildSnapshot(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	t.Run("aggregates_by_kind", func(t *testing.T) {
		gw := &fakeGateway{
			transactions: []models.Transaction{
				tx(models.TransactionKindIncome, "Salário", 500000),
				tx(models.TransactionKindExpense, "Alimentação", 120000),
				tx(models.TransactionKindExpense, "Transporte", 30000),
				tx(models.TransactionKindInvestment, "Tesouro", 80000),
			},
			goals: []models.Goal{
				{Status: models.GoalStatusActive},
				{Status: models.GoalStatusCompleted},
			},
		}

		snap, err := BuildSnapshot(gw, 1, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if snap.TotalIncome != 500000 {
			t.Errorf("expected income 500000, got %d", snap.TotalIncome)
		}
		if snap.TotalExpenses != 150000 {
			t.Errorf("expected expenses 150000, got %d", snap.TotalExpenses)
		}
		if snap.Balance != 350000 {
			t.Errorf("expected balance 350000, got %d", snap.Balance)
		}
		if snap.ActiveGoalCount != 1 {
			t.Errorf("expected 1 active goal, got %d", snap.ActiveGoalCount)
		}

		wantSince := now.AddDate(0, 0, -90)
		if !gw.since.Equal(wantSince) {
			t.Errorf("expected 90-day window start %v, got %v", wantSince, gw.since)
		}
	})

	t.Run("top_expenses_capped_at_five", func(t *testing.T) {
		gw := &fakeGateway{
			transactions: []models.Transaction{
				tx(models.TransactionKindExpense, "A", 100),
				tx(models.TransactionKindExpense, "B", 200),
				tx(models.TransactionKindExpense, "C", 300),
				tx(models.TransactionKindExpense, "D", 400),
				tx(models.TransactionKindExpense, "E", 500),
				tx(models.TransactionKindExpense, "F", 600),
			},
		}

		snap, err := BuildSnapshot(gw, 1, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(snap.TopExpenses) != 5 {
			t.Fatalf("expected 5 categories, got %d", len(snap.TopExpenses))
		}
		if snap.TopExpenses[0].Category != "F" || snap.TopExpenses[0].Total != 600 {
			t.Errorf("expected F first with 600, got %+v", snap.TopExpenses[0])
		}
		for _, ct := range snap.TopExpenses {
			if ct.Category == "A" {
				t.Error("expected smallest category A to be cut")
			}
		}
	})

	t.Run("gateway_error_propagates", func(t *testing.T) {
		gw := &fakeGateway{txErr: errors.New("db down")}

		if _, err := BuildSnapshot(gw, 1, now); err == nil {
			t.Fatal("expected error from failing gateway")
		}
	})
}

func TestSnapshotRendering(t *testing.T) {
	snap := &FinancialSnapshot{
		TotalIncome:     500000,
		TotalExpenses:   150000,
		TotalInvestment: 80000,
		Balance:         350000,
		TopExpenses:     []CategoryTotal{{Category: "Alimentação", Total: 120000}},
		ActiveGoalCount: 2,
	}

	t.Run("context_block", func(t *testing.T) {
		block := snap.ContextBlock()
		if !strings.Contains(block, "R$ 3,500.00") {
			t.Errorf("expected balance in context block, got %q", block)
		}
		if !strings.Contains(block, "Alimentação (R$ 1,200.00)") {
			t.Errorf("expected top category in context block, got %q", block)
		}
		if !strings.Contains(block, "Status: Positivo") {
			t.Errorf("expected positive status, got %q", block)
		}
	})

	t.Run("negative_balance_status", func(t *testing.T) {
		negative := &FinancialSnapshot{Balance: -100}
		if !strings.Contains(negative.ContextBlock(), "Status: Negativo") {
			t.Error("expected negative status in context block")
		}
	})

	t.Run("summary", func(t *testing.T) {
		summary := snap.Summary()
		if !strings.Contains(summary, "Resumo Financeiro") {
			t.Errorf("expected summary header, got %q", summary)
		}
		if !strings.Contains(summary, "Metas ativas: 2") {
			t.Errorf("expected goal count, got %q", summary)
		}
	})
}
