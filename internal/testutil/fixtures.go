package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finbot/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Type:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given kind and amount (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, kind models.TransactionKind, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, kind, amount, time.Now())
}

// CreateTestTransactionAt creates a transaction with an explicit date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID uint, kind models.TransactionKind, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Kind:     kind,
		Category: fmt.Sprintf("Test Category %d", nextID()),
		Amount:   amount,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget for the given category and month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, category string, amount int64, month, year int) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Month:    month,
		Year:     year,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an active goal with the given target amount (in cents).
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, targetAmount int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Title:        fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: targetAmount,
		Status:       models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
