package advisor

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"finbot/internal/models"
)

// snapshotWindow is the trailing period a snapshot aggregates over.
const snapshotWindow = 90 * 24 * time.Hour

// Gateway is the read-only persistence surface the engine depends on.
// Implemented by the service layer; the engine never writes through it.
type Gateway interface {
	TransactionsSince(userID uint, since time.Time) ([]models.Transaction, error)
	Goals(userID uint, status *models.GoalStatus) ([]models.Goal, error)
}

// CategoryTotal is one (category, summed cents) pair.
type CategoryTotal struct {
	Category string
	Total    int64
}

// FinancialSnapshot is a derived, non-persisted aggregate of a user's
// recent activity, recomputed for every reply that needs context.
type FinancialSnapshot struct {
	TotalIncome     int64
	TotalExpenses   int64
	TotalInvestment int64
	Balance         int64
	TopExpenses     []CategoryTotal
	ActiveGoalCount int
}

// BuildSnapshot aggregates the trailing window of transactions and the
// active goals into a snapshot. A gateway failure yields (nil, err); the
// caller degrades to non-personalized replies rather than surfacing it.
func BuildSnapshot(gw Gateway, userID uint, now time.Time) (*FinancialSnapshot, error) {
	since := now.Add(-snapshotWindow)
	transactions, err := gw.TransactionsSince(userID, since)
	if err != nil {
		return nil, err
	}

	snap := &FinancialSnapshot{}
	expenseByCategory := make(map[string]int64)
	for _, tx := range transactions {
		switch tx.Kind {
		case models.TransactionKindIncome:
			snap.TotalIncome += tx.Amount
		case models.TransactionKindExpense:
			snap.TotalExpenses += tx.Amount
			expenseByCategory[tx.Category] += tx.Amount
		case models.TransactionKindInvestment:
			snap.TotalInvestment += tx.Amount
		}
	}
	snap.Balance = snap.TotalIncome - snap.TotalExpenses

	for category, total := range expenseByCategory {
		snap.TopExpenses = append(snap.TopExpenses, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(snap.TopExpenses, func(i, j int) bool {
		if snap.TopExpenses[i].Total != snap.TopExpenses[j].Total {
			return snap.TopExpenses[i].Total > snap.TopExpenses[j].Total
		}
		return snap.TopExpenses[i].Category < snap.TopExpenses[j].Category
	})
	if len(snap.TopExpenses) > 5 {
		snap.TopExpenses = snap.TopExpenses[:5]
	}

	active := models.GoalStatusActive
	goals, err := gw.Goals(userID, &active)
	if err != nil {
		return nil, err
	}
	snap.ActiveGoalCount = len(goals)

	return snap, nil
}

// centsToFloat converts stored cents to the currency unit for display.
func centsToFloat(cents int64) float64 {
	return float64(cents) / 100
}

// ContextBlock renders the snapshot as the context preamble sent to the
// model and embedded in personalized replies.
func (s *FinancialSnapshot) ContextBlock() string {
	var top []string
	for _, ct := range s.TopExpenses {
		top = append(top, fmt.Sprintf("%s (%s)", ct.Category, formatBRL(centsToFloat(ct.Total))))
	}

	status := "Positivo"
	if s.Balance < 0 {
		status = "Negativo"
	}

	return fmt.Sprintf(`DADOS FINANCEIROS ATUAIS (últimos 3 meses):
- Receitas: %s
- Despesas: %s
- Investimentos: %s
- Saldo: %s
- Principais gastos: %s
- Metas ativas: %d metas
- Status: %s`,
		formatBRL(centsToFloat(s.TotalIncome)),
		formatBRL(centsToFloat(s.TotalExpenses)),
		formatBRL(centsToFloat(s.TotalInvestment)),
		formatBRL(centsToFloat(s.Balance)),
		strings.Join(top, ", "),
		s.ActiveGoalCount,
		status,
	)
}

// Summary renders the snapshot as the user-facing 'resumo' reply.
func (s *FinancialSnapshot) Summary() string {
	var b strings.Builder
	b.WriteString("📊 **Resumo Financeiro (últimos 3 meses):**\n\n")
	fmt.Fprintf(&b, "Saldo: %s\n", formatBRL(centsToFloat(s.Balance)))
	fmt.Fprintf(&b, "Receitas: %s\n", formatBRL(centsToFloat(s.TotalIncome)))
	fmt.Fprintf(&b, "Despesas: %s\n", formatBRL(centsToFloat(s.TotalExpenses)))
	fmt.Fprintf(&b, "Investimentos: %s\n", formatBRL(centsToFloat(s.TotalInvestment)))

	if len(s.TopExpenses) > 0 {
		b.WriteString("\nDespesas por categoria:\n")
		for _, ct := range s.TopExpenses {
			fmt.Fprintf(&b, "- %s: %s\n", ct.Category, formatBRL(centsToFloat(ct.Total)))
		}
	}

	fmt.Fprintf(&b, "\nMetas ativas: %d", s.ActiveGoalCount)
	return b.String()
}
