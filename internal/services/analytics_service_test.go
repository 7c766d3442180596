package services

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestAnalytics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAnalyticsService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)
	otherAccount := testutil.CreateTestAccount(t, db, other.ID)
	food := testutil.CreateTestCategoryWithName(t, db, "Food")
	rent := testutil.CreateTestCategoryWithName(t, db, "Rent")

	testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionTypeIncome, testutil.Amount("3000"), testutil.Date(2024, 1, 1), nil)
	testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionTypeExpense, testutil.Amount("1000.10"), testutil.Date(2024, 1, 3),
		map[string]decimal.Decimal{rent.ID: testutil.Amount("900.10"), food.ID: testutil.Amount("100")})
	testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionTypeExpense, testutil.Amount("50.20"), testutil.Date(2024, 2, 14),
		map[string]decimal.Decimal{food.ID: testutil.Amount("50.20")})
	testutil.CreateTestTransaction(t, db, other.ID, otherAccount.ID, models.TransactionTypeExpense, testutil.Amount("777"), testutil.Date(2024, 1, 5),
		map[string]decimal.Decimal{food.ID: testutil.Amount("777")})

	t.Run("dashboard", func(t *testing.T) {
		summary, err := svc.GetDashboard(user.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, summary.TotalIncome, "3000")
		testutil.AssertDecimal(t, summary.TotalExpense, "1050.30")
		testutil.AssertDecimal(t, summary.NetSavings, "1949.70")
	})

	t.Run("dashboard_empty_user", func(t *testing.T) {
		fresh := testutil.CreateTestUser(t, db)
		summary, err := svc.GetDashboard(fresh.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, summary.NetSavings, "0")
	})

	t.Run("spending_trends", func(t *testing.T) {
		trends, err := svc.GetSpendingTrends(user.ID)
		testutil.AssertNoError(t, err)

		if len(trends) != 2 {
			t.Fatalf("expected 2 months, got %d", len(trends))
		}
		if trends[0].Month != "2024-01" || trends[1].Month != "2024-02" {
			t.Errorf("unexpected months %s, %s", trends[0].Month, trends[1].Month)
		}
		testutil.AssertDecimal(t, trends[0].TotalExpense, "1000.10")
		testutil.AssertDecimal(t, trends[1].TotalExpense, "50.20")
	})

	t.Run("expenses_by_category", func(t *testing.T) {
		rows, err := svc.GetExpensesByCategory(user.ID)
		testutil.AssertNoError(t, err)

		if len(rows) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(rows))
		}
		if rows[0].Category != "Food" || rows[1].Category != "Rent" {
			t.Errorf("unexpected order %s, %s", rows[0].Category, rows[1].Category)
		}
		testutil.AssertDecimal(t, rows[0].TotalExpense, "150.20")
		testutil.AssertDecimal(t, rows[1].TotalExpense, "900.10")
	})

	t.Run("expense_report_pdf", func(t *testing.T) {
		pdf, err := svc.ExpenseReportPDF(user.ID)
		testutil.AssertNoError(t, err)
		if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
			t.Error("expected a PDF document")
		}
	})

	t.Run("expense_report_unknown_user", func(t *testing.T) {
		_, err := svc.ExpenseReportPDF("0190a5b2-7c3e-7a1b-8c9d-0123456789ab")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
