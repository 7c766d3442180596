package services

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/report"
)

// analyticsService answers aggregate questions over a user's transactions.
type analyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db, now: time.Now}
}

func (s *analyticsService) sumByType(userID string, txType models.TransactionType) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ?", userID, txType).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total.Round(2), nil
}

// GetDashboard returns lifetime income, expenses and their difference.
func (s *analyticsService) GetDashboard(userID string) (*DashboardSummary, error) {
	income, err := s.sumByType(userID, models.TransactionTypeIncome)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense, err := s.sumByType(userID, models.TransactionTypeExpense)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &DashboardSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetSavings:   income.Sub(expense),
	}, nil
}

// GetSpendingTrends returns expense totals per calendar month, oldest first.
// Months are grouped in Go so the query stays portable across drivers.
func (s *analyticsService) GetSpendingTrends(userID string) ([]MonthlyTrend, error) {
	var rows []struct {
		Date   time.Time
		Amount decimal.Decimal
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("date, amount").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, r := range rows {
		month := r.Date.UTC().Format("2006-01")
		totals[month] = totals[month].Add(r.Amount)
	}

	trends := make([]MonthlyTrend, 0, len(totals))
	for month, total := range totals {
		trends = append(trends, MonthlyTrend{Month: month, TotalExpense: total})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends, nil
}

// GetExpensesByCategory returns how much of the user's expenses went to each
// category, by category name.
func (s *analyticsService) GetExpensesByCategory(userID string) ([]CategoryExpense, error) {
	var rows []struct {
		Name  string
		Total decimal.Decimal
	}
	err := s.db.Table("categories AS c").
		Select("c.name AS name, COALESCE(SUM(tc.allocated_amount), 0) AS total").
		Joins("JOIN transaction_categories tc ON tc.category_id = c.id").
		Joins("JOIN transactions t ON t.id = tc.transaction_id").
		Where("t.user_id = ? AND t.type = ?", userID, models.TransactionTypeExpense).
		Group("c.name").
		Order("c.name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := make([]CategoryExpense, 0, len(rows))
	for _, r := range rows {
		result = append(result, CategoryExpense{Category: r.Name, TotalExpense: r.Total.Round(2)})
	}
	return result, nil
}

// ExpenseReportPDF renders the dashboard totals and category breakdown as a
// PDF document.
func (s *analyticsService) ExpenseReportPDF(userID string) ([]byte, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary, err := s.GetDashboard(userID)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.GetExpensesByCategory(userID)
	if err != nil {
		return nil, err
	}

	r := &report.ExpenseReport{
		Username:     user.Username,
		GeneratedAt:  s.now(),
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
	}
	for _, c := range byCategory {
		r.Categories = append(r.Categories, report.CategoryLine{Category: c.Category, Total: c.TotalExpense})
	}

	pdf, err := report.BuildExpensePDF(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pdf, nil
}
