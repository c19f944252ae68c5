package models

import "time"

// TransactionKind represents the kind of transaction
type TransactionKind string

const (
	TransactionKindIncome     TransactionKind = "income"
	TransactionKindExpense    TransactionKind = "expense"
	TransactionKindInvestment TransactionKind = "investment"
)

// Transaction represents a financial transaction in the system.
// Amount is stored in cents and must be positive; the kind determines
// whether it counts toward income, expenses or investments.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Category    string          `gorm:"not null" json:"category"`
	Subcategory string          `json:"subcategory"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
