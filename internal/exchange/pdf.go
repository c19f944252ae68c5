package exchange

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"finbot/internal/advisor"
	apperrors "finbot/internal/errors"
	"finbot/internal/models"
)

// WriteReportPDF renders a printable summary of the user's recent finances:
// the 90-day totals, the largest expense categories and the goal list.
func WriteReportPDF(w io.Writer, userName string, snapshot *advisor.FinancialSnapshot, goals []models.Goal) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("Relatório Financeiro"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("%s — gerado em %s", userName, time.Now().Format("02/01/2006"))))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Últimos 90 dias"))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	summaryRow(pdf, tr, "Receitas", snapshot.TotalIncome)
	summaryRow(pdf, tr, "Despesas", snapshot.TotalExpenses)
	summaryRow(pdf, tr, "Investimentos", snapshot.TotalInvestment)
	pdf.SetFont("Helvetica", "B", 11)
	summaryRow(pdf, tr, "Saldo", snapshot.Balance)
	pdf.Ln(6)

	if len(snapshot.TopExpenses) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr("Maiores despesas por categoria"))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		for _, cat := range snapshot.TopExpenses {
			summaryRow(pdf, tr, cat.Category, cat.Total)
		}
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Metas"))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	if len(goals) == 0 {
		pdf.Cell(0, 7, tr("Nenhuma meta cadastrada."))
		pdf.Ln(7)
	}
	for _, goal := range goals {
		line := fmt.Sprintf("%s: R$ %s de R$ %s (%.0f%%)",
			goal.Title,
			centsToDecimalString(goal.CurrentAmount),
			centsToDecimalString(goal.TargetAmount),
			goal.Progress()*100)
		if goal.Status == models.GoalStatusCompleted {
			line += " — concluída"
		}
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	if err := pdf.Output(w); err != nil {
		return apperrors.Wrap(apperrors.ErrExportFailed, err)
	}
	return nil
}

func summaryRow(pdf *fpdf.Fpdf, tr func(string) string, label string, cents int64) {
	pdf.Cell(70, 7, tr(label))
	pdf.Cell(0, 7, tr("R$ "+centsToDecimalString(cents)))
	pdf.Ln(7)
}
