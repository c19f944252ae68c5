package services

import (
	"time"

	"finbot/internal/models"
	"finbot/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name string, categoryType models.CategoryType, description, icon, color string) (*models.Category, error)
	GetUserCategories(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, name, description, icon, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Kind      *models.TransactionKind
	Category  *string
	MinAmount *int64
	MaxAmount *int64
}

// MonthlySummary aggregates one calendar month of transactions by kind.
type MonthlySummary struct {
	Year       int   `json:"year"`
	Month      int   `json:"month"`
	Income     int64 `json:"income"`
	Expenses   int64 `json:"expenses"`
	Investment int64 `json:"investment"`
	Count      int64 `json:"count"`
}

// CategorySummary aggregates transactions of one (category, kind) pair.
type CategorySummary struct {
	Category string                 `json:"category"`
	Kind     models.TransactionKind `json:"kind"`
	Total    int64                  `json:"total"`
	Count    int64                  `json:"count"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, kind models.TransactionKind, category, subcategory string, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	ListTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error)
	TransactionsSince(userID uint, since time.Time) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, kind models.TransactionKind, category, subcategory string, amount int64, description string, date time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
	GetBalance(userID uint) (int64, error)
	GetMonthlySummary(userID uint, year, month int) (*MonthlySummary, error)
	GetCategorySummary(userID uint, from, to *time.Time) ([]CategorySummary, error)
}

// GoalStats aggregates overall goal progress for a user.
type GoalStats struct {
	TotalGoals     int64 `json:"total_goals"`
	CompletedGoals int64 `json:"completed_goals"`
	TotalTarget    int64 `json:"total_target"`
	TotalSaved     int64 `json:"total_saved"`
}

// BudgetProgress compares one budget's limit against the expenses recorded
// for its category in its month.
type BudgetProgress struct {
	BudgetID   uint    `json:"budget_id"`
	Category   string  `json:"category"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Limit      int64   `json:"limit"`
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SetBudget(userID uint, category string, amount int64, month, year int) (*models.Budget, error)
	GetUserBudgets(userID uint, page pagination.PageRequest, month, year *int) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	GetBudgetProgress(userID, budgetID uint) (*BudgetProgress, error)
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(userID uint, title string, targetAmount int64, deadline *time.Time) (*models.Goal, error)
	GetUserGoals(userID uint, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.Goal], error)
	Goals(userID uint, status *models.GoalStatus) ([]models.Goal, error)
	GetGoalByID(userID, goalID uint) (*models.Goal, error)
	UpdateGoal(userID, goalID uint, title string, targetAmount *int64, deadline *time.Time) (*models.Goal, error)
	UpdateGoalProgress(userID, goalID uint, currentAmount int64) (*models.Goal, error)
	DeleteGoal(userID, goalID uint) error
	GetGoalStats(userID uint) (*GoalStats, error)
}
