package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction creates a new transaction for a user
func (s *transactionService) CreateTransaction(
	userID uint,
	kind models.TransactionKind,
	category string,
	subcategory string,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	// Validate input
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	switch kind {
	case models.TransactionKindIncome, models.TransactionKindExpense, models.TransactionKindInvestment:
	default:
		return nil, apperrors.ErrInvalidTransactionKind
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Kind:        kind,
		Category:    category,
		Subcategory: subcategory,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of transactions for a user.
func (s *transactionService) GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListTransactions retrieves all matching transactions without pagination.
// Used by exports and backups, where partial pages are not useful.
func (s *transactionService) ListTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	q := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	q = applyTransactionFilters(q, filter)

	var transactions []models.Transaction
	if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// TransactionsSince retrieves all transactions on or after the given date.
func (s *transactionService) TransactionsSince(userID uint, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Kind != nil {
		q = q.Where("kind = ?", *f.Kind)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces a transaction's fields
func (s *transactionService) UpdateTransaction(
	userID, transactionID uint,
	kind models.TransactionKind,
	category string,
	subcategory string,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	switch kind {
	case models.TransactionKindIncome, models.TransactionKindExpense, models.TransactionKindInvestment:
	default:
		return nil, apperrors.ErrInvalidTransactionKind
	}
	if date.IsZero() {
		date = transaction.Date
	}

	transaction.Kind = kind
	transaction.Category = category
	transaction.Subcategory = subcategory
	transaction.Amount = amount
	transaction.Description = description
	transaction.Date = date

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// DeleteTransaction soft-deletes a transaction
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// GetBalance computes income minus expenses across all of a user's transactions.
// Investments count as outflows: money moved out of the spendable balance.
func (s *transactionService) GetBalance(userID uint) (int64, error) {
	var balance int64
	err := s.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE -amount END), 0)", models.TransactionKindIncome).
		Scan(&balance).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return balance, nil
}

// GetMonthlySummary aggregates one calendar month of transactions by kind.
func (s *transactionService) GetMonthlySummary(userID uint, year, month int) (*MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	summary := &MonthlySummary{Year: year, Month: month}

	rows := []struct {
		Kind  models.TransactionKind
		Total int64
		Count int64
	}{}
	err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("kind, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, row := range rows {
		switch row.Kind {
		case models.TransactionKindIncome:
			summary.Income = row.Total
		case models.TransactionKindExpense:
			summary.Expenses = row.Total
		case models.TransactionKindInvestment:
			summary.Investment = row.Total
		}
		summary.Count += row.Count
	}

	return summary, nil
}

// GetCategorySummary aggregates transactions per (category, kind) pair,
// optionally restricted to a date range, largest totals first.
func (s *transactionService) GetCategorySummary(userID uint, from, to *time.Time) ([]CategorySummary, error) {
	q := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var summaries []CategorySummary
	err := q.Select("category, kind, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("category, kind").
		Order("total DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return summaries, nil
}
