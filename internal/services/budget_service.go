package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/pagination"
)

// budgetService handles monthly category-budget business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget creates the budget for (category, month, year), or replaces its
// amount when one already exists. Setting a budget twice is an update, not
// a duplicate.
func (s *budgetService) SetBudget(userID uint, category string, amount int64, month, year int) (*models.Budget, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget category is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be greater than zero")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	var budget models.Budget
	err := s.db.Where("user_id = ? AND category = ? AND month = ? AND year = ?",
		userID, category, month, year).First(&budget).Error
	switch {
	case err == nil:
		budget.Amount = amount
		if err := s.db.Save(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &budget, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{
			UserID:   userID,
			Category: category,
			Amount:   amount,
			Month:    month,
			Year:     year,
		}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &budget, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetUserBudgets retrieves a paginated list of the user's budgets, optionally
// narrowed to one month and/or year.
func (s *budgetService) GetUserBudgets(userID uint, page pagination.PageRequest, month, year *int) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if month != nil {
		base = base.Where("month = ?", *month)
	}
	if year != nil {
		base = base.Where("year = ?", *year)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Scopes(pagination.Paginate(page)).
		Order("year DESC, month DESC, category").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID retrieves a budget by ID for a specific user
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// DeleteBudget soft-deletes a budget
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// GetBudgetProgress sums the expenses recorded for the budget's category
// inside its calendar month and compares them against the limit.
func (s *budgetService) GetBudgetProgress(userID, budgetID uint) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	start := time.Date(budget.Year, time.Month(budget.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var spent int64
	err = s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category = ? AND kind = ? AND date >= ? AND date < ?",
			userID, budget.Category, models.TransactionKindExpense, start, end).
		Scan(&spent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var percentage float64
	if budget.Amount > 0 {
		percentage = float64(spent) / float64(budget.Amount) * 100
	}

	return &BudgetProgress{
		BudgetID:   budget.ID,
		Category:   budget.Category,
		Month:      budget.Month,
		Year:       budget.Year,
		Limit:      budget.Amount,
		Spent:      spent,
		Remaining:  budget.Amount - spent,
		Percentage: percentage,
	}, nil
}
