package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeInvestment CategoryType = "investment"
)

// Category represents an entry in a user's category pick-list. Transactions
// reference categories by name so summaries keep working for rows imported
// with free-form categories.
type Category struct {
	Base
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	Name        string       `gorm:"not null" json:"name"`
	Type        CategoryType `gorm:"not null" json:"type"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
}
