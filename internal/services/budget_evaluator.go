package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/events"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// BudgetExceededTitle is the title of every notification raised when spend
// passes a budget's limit.
const BudgetExceededTitle = "Budget Exceeded"

// BudgetExceededMessage formats the notification body.
func BudgetExceededMessage(categoryName string, limit, spent decimal.Decimal) string {
	return fmt.Sprintf("Budget exceeded for category '%s'. Limit: %s, Spent: %s",
		categoryName, limit.StringFixed(2), spent.StringFixed(2))
}

// SpentInWindow sums the amounts userID's expense transactions allocated to
// categoryID between start and end, both days inclusive.
func SpentInWindow(db *gorm.DB, userID, categoryID string, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := db.Table("transaction_categories AS tc").
		Select("COALESCE(SUM(tc.allocated_amount), 0) AS total").
		Joins("JOIN transactions t ON t.id = tc.transaction_id").
		Where("t.user_id = ? AND t.type = ? AND tc.category_id = ?", userID, models.TransactionTypeExpense, categoryID).
		Where("t.date >= ? AND t.date <= ?", models.DateOnly(start), models.DateOnly(end)).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	// SQLite sums NUMERIC columns as floats.
	return row.Total.Round(2), nil
}

// budgetEvaluator raises notifications for budgets whose window spend has
// passed the limit.
type budgetEvaluator struct {
	db        *gorm.DB
	publisher events.Publisher
}

// NewBudgetEvaluator creates a new BudgetEvaluator. A nil publisher disables
// event publishing.
func NewBudgetEvaluator(db *gorm.DB, publisher events.Publisher) BudgetEvaluator {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &budgetEvaluator{db: db, publisher: publisher}
}

// OnAllocationRecorded re-evaluates every budget userID holds for categoryID.
// Budgets without both a start and an end date are skipped. A failure on one
// budget does not stop the others; all failures are returned joined.
func (e *budgetEvaluator) OnAllocationRecorded(userID, categoryID string) error {
	var budgets []models.Budget
	if err := e.db.Preload("Category").
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Order("created_at").Order("id").
		Find(&budgets).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var errs []error
	for i := range budgets {
		budget := &budgets[i]
		if !budget.HasWindow() {
			continue
		}
		if err := e.evaluate(budget); err != nil {
			errs = append(errs, fmt.Errorf("budget %s: %w", budget.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (e *budgetEvaluator) evaluate(budget *models.Budget) error {
	spent, err := SpentInWindow(e.db, budget.UserID, budget.CategoryID, *budget.StartDate, *budget.EndDate)
	if err != nil {
		return fmt.Errorf("sum spend: %w", err)
	}
	if !spent.GreaterThan(budget.LimitAmount) {
		return nil
	}

	notification := &models.Notification{
		UserID:  budget.UserID,
		Title:   BudgetExceededTitle,
		Message: BudgetExceededMessage(budget.Category.Name, budget.LimitAmount, spent),
	}
	if err := e.db.Create(notification).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	event := &events.BudgetExceededEvent{
		NotificationID: notification.ID,
		UserID:         budget.UserID,
		BudgetID:       budget.ID,
		CategoryID:     budget.CategoryID,
		CategoryName:   budget.Category.Name,
		Limit:          budget.LimitAmount,
		Spent:          spent,
		OccurredAt:     notification.CreatedAt,
	}
	if err := e.publisher.PublishBudgetExceeded(context.Background(), event); err != nil {
		logger.Named("budget-evaluator").Warnw("failed to publish budget exceeded event",
			"error", err,
			"budget_id", budget.ID,
			"notification_id", notification.ID,
		)
	}
	return nil
}
