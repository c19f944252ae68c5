package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	apperrors "finbot/internal/errors"
	"finbot/internal/models"
)

// Backup is the full JSON snapshot of a user's data.
type Backup struct {
	UserID       uint                `json:"user_id"`
	ExportDate   time.Time           `json:"export_date"`
	Transactions []BackupTransaction `json:"transactions"`
	Goals        []BackupGoal        `json:"goals"`
}

// BackupTransaction is the JSON shape of one exported transaction.
// Amounts are plain decimal strings, "150.50".
type BackupTransaction struct {
	ID          uint   `json:"id"`
	Kind        string `json:"type"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
}

// BackupGoal is the JSON shape of one exported goal.
type BackupGoal struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	Deadline      string `json:"deadline,omitempty"`
	Status        string `json:"status"`
}

// WriteBackup writes the full backup of a user's transactions and goals as JSON.
func WriteBackup(w io.Writer, userID uint, transactions []models.Transaction, goals []models.Goal) error {
	backup := Backup{
		UserID:       userID,
		ExportDate:   time.Now(),
		Transactions: make([]BackupTransaction, 0, len(transactions)),
		Goals:        make([]BackupGoal, 0, len(goals)),
	}

	for _, tx := range transactions {
		backup.Transactions = append(backup.Transactions, BackupTransaction{
			ID:          tx.ID,
			Kind:        string(tx.Kind),
			Category:    tx.Category,
			Subcategory: tx.Subcategory,
			Amount:      centsToDecimalString(tx.Amount),
			Description: tx.Description,
			Date:        tx.Date.Format("2006-01-02"),
		})
	}

	for _, goal := range goals {
		out := BackupGoal{
			ID:            goal.ID,
			Title:         goal.Title,
			TargetAmount:  centsToDecimalString(goal.TargetAmount),
			CurrentAmount: centsToDecimalString(goal.CurrentAmount),
			Status:        string(goal.Status),
		}
		if goal.Deadline != nil {
			out.Deadline = goal.Deadline.Format("2006-01-02")
		}
		backup.Goals = append(backup.Goals, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return apperrors.Wrap(apperrors.ErrExportFailed, err)
	}
	return nil
}

// ReadBackup parses a backup file without touching the database.
func ReadBackup(r io.Reader) (*Backup, error) {
	var backup Backup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrImportFailed, err)
	}
	return &backup, nil
}

// RestoreTransactions records every transaction from a backup for the user.
// Original IDs are not preserved. Bad entries are skipped and reported.
func RestoreTransactions(backup *Backup, writer TransactionWriter, userID uint) (*ImportResult, error) {
	if backup == nil {
		return nil, apperrors.WithMessage(apperrors.ErrImportFailed, "empty backup")
	}

	result := &ImportResult{}
	for i, tx := range backup.Transactions {
		kind, ok := labelKinds[tx.Kind]
		if !ok {
			result.Errors = append(result.Errors, importError(i, "tipo desconhecido "+tx.Kind))
			continue
		}
		amount, err := decimalStringToCents(tx.Amount)
		if err != nil {
			result.Errors = append(result.Errors, importError(i, "valor inválido "+tx.Amount))
			continue
		}
		date, err := time.Parse("2006-01-02", tx.Date)
		if err != nil {
			result.Errors = append(result.Errors, importError(i, "data inválida "+tx.Date))
			continue
		}
		if _, err := writer.CreateTransaction(userID, kind, tx.Category, tx.Subcategory, amount, tx.Description, date); err != nil {
			result.Errors = append(result.Errors, importError(i, err.Error()))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func importError(index int, msg string) string {
	return fmt.Sprintf("transação %d: %s", index+1, msg)
}
