package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
	"finbot/internal/pagination"
	"finbot/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the payload for creating or updating a transaction.
// Amount is in cents.
type TransactionRequest struct {
	Kind        models.TransactionKind `json:"kind" binding:"required,transaction_kind"`
	Category    string                 `json:"category" binding:"required,max=100"`
	Subcategory string                 `json:"subcategory" binding:"max=100"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Description string                 `json:"description" binding:"max=255"`
	Date        time.Time              `json:"date"`
}

// CreateTransaction handles the creation of a new transaction
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(userID, req.Kind, req.Category, req.Subcategory, req.Amount, req.Description, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetUserTransactions handles the paginated, filtered listing of transactions
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID, page, *filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func parseTransactionFilter(c *gin.Context) (*services.TransactionFilter, error) {
	filter := &services.TransactionFilter{}

	var err error
	if filter.FromDate, err = parseQueryDate(c, "from"); err != nil {
		return nil, err
	}
	if filter.ToDate, err = parseQueryDate(c, "to"); err != nil {
		return nil, err
	}

	if raw := c.Query("kind"); raw != "" {
		kind := models.TransactionKind(raw)
		switch kind {
		case models.TransactionKindIncome, models.TransactionKindExpense, models.TransactionKindInvestment:
			filter.Kind = &kind
		default:
			return nil, apperrors.ErrInvalidTransactionKind
		}
	}

	if raw := c.Query("category"); raw != "" {
		filter.Category = &raw
	}

	return filter, nil
}

// GetTransaction handles the retrieval of a single transaction
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles updating a transaction
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, req.Kind, req.Category, req.Subcategory, req.Amount, req.Description, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// GetBalance returns the user's overall balance in cents
func (h *TransactionHandler) GetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.transactionService.GetBalance(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// GetMonthlySummary returns one calendar month of totals by kind
func (h *TransactionHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if raw := c.Query("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year"))
			return
		}
	}
	if raw := c.Query("month"); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month"))
			return
		}
	}

	summary, err := h.transactionService.GetMonthlySummary(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategorySummary returns totals grouped by category and kind
func (h *TransactionHandler) GetCategorySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, err := parseQueryDate(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseQueryDate(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.transactionService.GetCategorySummary(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": summaries})
}
