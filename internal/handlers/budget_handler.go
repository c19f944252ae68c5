package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finbot/internal/errors"
	"finbot/internal/pagination"
	"finbot/internal/services"
)

// BudgetHandler handles monthly category-budget requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudgetRequest represents the payload for setting a budget. Amount is in
// cents; month and year default to the current calendar month when omitted.
type SetBudgetRequest struct {
	Category string `json:"category" binding:"required,max=100"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Month    int    `json:"month" binding:"omitempty,min=1,max=12"`
	Year     int    `json:"year" binding:"omitempty,min=2000"`
}

// SetBudget creates or replaces the budget for a category and month
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	now := time.Now()
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	if req.Year == 0 {
		req.Year = now.Year()
	}

	budget, err := h.budgetService.SetBudget(userID, req.Category, req.Amount, req.Month, req.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetUserBudgets handles the paginated listing of budgets, optionally by month/year
func (h *BudgetHandler) GetUserBudgets(c *gin.Context) {
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

	month, err := parseQueryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	year, err := parseQueryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID, page, month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// GetBudget handles the retrieval of a single budget with its progress
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudgetByID(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgetProgress returns spending against the budget's limit
func (h *BudgetHandler) GetBudgetProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	progress, err := h.budgetService.GetBudgetProgress(userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// DeleteBudget handles deleting a budget
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}

// parseQueryInt parses an optional integer query parameter, returning nil
// when absent.
func parseQueryInt(c *gin.Context, param string) (*int, error) {
	raw := c.Query(param)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return &n, nil
}
