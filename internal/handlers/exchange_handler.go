package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finbot/internal/advisor"
	apperrors "finbot/internal/errors"
	"finbot/internal/exchange"
	"finbot/internal/services"
)

// ExchangeHandler handles file import/export requests
type ExchangeHandler struct {
	userService        services.UserServicer
	transactionService services.TransactionServicer
	goalService        services.GoalServicer
	gateway            *services.FinanceGateway
}

// NewExchangeHandler creates a new ExchangeHandler
func NewExchangeHandler(userService services.UserServicer, transactionService services.TransactionServicer, goalService services.GoalServicer) *ExchangeHandler {
	return &ExchangeHandler{
		userService:        userService,
		transactionService: transactionService,
		goalService:        goalService,
		gateway:            services.NewFinanceGateway(transactionService, goalService),
	}
}

// ExportTransactionsCSV streams the user's transactions as a CSV download
func (h *ExchangeHandler) ExportTransactionsCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(userID, services.TransactionFilter{})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transacoes.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := exchange.WriteTransactionsCSV(c.Writer, transactions); err != nil {
		respondWithError(c, err)
	}
}

// ExportGoalsCSV streams the user's goals as a CSV download
func (h *ExchangeHandler) ExportGoalsCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.Goals(userID, nil)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="metas.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := exchange.WriteGoalsCSV(c.Writer, goals); err != nil {
		respondWithError(c, err)
	}
}

// ImportTransactionsCSV records transactions from an uploaded CSV file
func (h *ExchangeHandler) ImportTransactionsCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrImportFailed, err))
		return
	}
	defer file.Close()

	result, err := exchange.ImportTransactionsCSV(file, h.transactionService, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportBackup streams the user's full data as a JSON download
func (h *ExchangeHandler) ExportBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(userID, services.TransactionFilter{})
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.Goals(userID, nil)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.Header("Content-Type", "application/json; charset=utf-8")
	if err := exchange.WriteBackup(c.Writer, userID, transactions, goals); err != nil {
		respondWithError(c, err)
	}
}

// ImportBackup restores transactions from an uploaded backup file
func (h *ExchangeHandler) ImportBackup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrImportFailed, err))
		return
	}
	defer file.Close()

	backup, err := exchange.ReadBackup(file)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := exchange.RestoreTransactions(backup, h.transactionService, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportReportPDF streams a printable financial report
func (h *ExchangeHandler) ExportReportPDF(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snapshot, err := advisor.BuildSnapshot(h.gateway, userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.Goals(userID, nil)
	if err != nil {
		respondWithError(c, err)
		return
	}

	name := user.Name
	if name == "" {
		name = user.Email
	}

	c.Header("Content-Disposition", `attachment; filename="relatorio.pdf"`)
	c.Header("Content-Type", "application/pdf")
	if err := exchange.WriteReportPDF(c.Writer, name, snapshot, goals); err != nil {
		respondWithError(c, err)
	}
}
