// Package report renders downloadable reports.
package report

import (
	"bytes"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// CategoryLine is one row of the category breakdown.
type CategoryLine struct {
	Category string
	Total    decimal.Decimal
}

// ExpenseReport is the data behind the expense-by-category PDF.
type ExpenseReport struct {
	Username     string
	GeneratedAt  time.Time
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Categories   []CategoryLine
}

// Share returns line's percentage of the allocated total, or zero.
func (r *ExpenseReport) Share(line CategoryLine) decimal.Decimal {
	allocated := decimal.Zero
	for _, l := range r.Categories {
		allocated = allocated.Add(l.Total)
	}
	if allocated.IsZero() {
		return decimal.Zero
	}
	return line.Total.Mul(decimal.NewFromInt(100)).Div(allocated).Round(1)
}

// BuildExpensePDF renders r as an A4 PDF document.
func BuildExpensePDF(r *ExpenseReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("fintrack Expense Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "fintrack Expense Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "User: "+r.Username)
	pdf.Ln(6)
	pdf.Cell(0, 8, "Generated: "+r.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total Income: "+r.TotalIncome.StringFixed(2))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Total Expenses: "+r.TotalExpense.StringFixed(2))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Net Savings: "+r.TotalIncome.Sub(r.TotalExpense).StringFixed(2))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expenses by Category")
	pdf.Ln(8)

	if len(r.Categories) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, "No categorised expenses yet.")
		pdf.Ln(7)
	} else {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(90, 7, "Category")
		pdf.Cell(50, 7, "Amount")
		pdf.Cell(30, 7, "%")
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range r.Categories {
			pdf.Cell(90, 7, line.Category)
			pdf.Cell(50, 7, line.Total.StringFixed(2))
			pdf.Cell(30, 7, r.Share(line).StringFixed(1)+"%")
			pdf.Ln(7)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
