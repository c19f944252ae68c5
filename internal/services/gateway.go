package services

import (
	"time"

	"finbot/internal/models"
)

// FinanceGateway exposes the read side of transactions and goals as a
// single value, for consumers that derive views from both.
type FinanceGateway struct {
	transactions TransactionServicer
	goals        GoalServicer
}

// NewFinanceGateway creates a FinanceGateway over the given services.
func NewFinanceGateway(transactions TransactionServicer, goals GoalServicer) *FinanceGateway {
	return &FinanceGateway{transactions: transactions, goals: goals}
}

func (g *FinanceGateway) TransactionsSince(userID uint, since time.Time) ([]models.Transaction, error) {
	return g.transactions.TransactionsSince(userID, since)
}

func (g *FinanceGateway) Goals(userID uint, status *models.GoalStatus) ([]models.Goal, error) {
	return g.goals.Goals(userID, status)
}
