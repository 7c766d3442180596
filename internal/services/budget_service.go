package services

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// normalizeWindow truncates both dates to whole days and checks their order.
func normalizeWindow(start, end *time.Time) (*time.Time, *time.Time, error) {
	if start != nil {
		d := models.DateOnly(*start)
		start = &d
	}
	if end != nil {
		d := models.DateOnly(*end)
		end = &d
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, apperrors.ErrInvalidBudgetDate
	}
	return start, end, nil
}

// CreateBudget creates a new budget for a category.
func (s *budgetService) CreateBudget(
	userID, categoryID, period string,
	limit decimal.Decimal,
	startDate, endDate *time.Time,
) (*models.Budget, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period is required")
	}
	if !limit.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount must be greater than zero")
	}

	startDate, endDate, err := normalizeWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	category, err := s.findCategory(categoryID)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Period:      period,
		LimitAmount: limit,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := s.db.Omit("Category").Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	budget.Category = *category

	return budget, nil
}

// findCategory loads a budget's target category. Categories are global, so
// only existence is checked; a missing one is a bad request.
func (s *budgetService) findCategory(categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithStatus(apperrors.ErrCategoryNotFound, http.StatusBadRequest)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetUserBudgets returns a paginated list of budgets for the user, optionally
// limited to one category.
func (s *budgetService) GetUserBudgets(
	userID string,
	page pagination.PageRequest,
	categoryID *string,
) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if categoryID != nil {
		base = base.Where("category_id = ?", *categoryID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Preload("Category").Scopes(pagination.Ordered("created_at"), pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Category").Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields. clearWindow removes both
// dates and cannot be combined with new ones. Changing the category, window
// or limit does not trigger evaluation; the next expense in the category does.
func (s *budgetService) UpdateBudget(
	userID, budgetID string,
	categoryID, period *string,
	limit *decimal.Decimal,
	startDate, endDate *time.Time,
	clearWindow bool,
) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if clearWindow && (startDate != nil || endDate != nil) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "clear_window cannot be combined with start_date or end_date")
	}

	updates := make(map[string]interface{})
	if categoryID != nil && *categoryID != budget.CategoryID {
		if _, err := s.findCategory(*categoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *categoryID
	}
	if period != nil {
		trimmed := strings.TrimSpace(*period)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must not be empty")
		}
		updates["period"] = trimmed
	}
	if limit != nil {
		if !limit.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit amount must be greater than zero")
		}
		updates["limit_amount"] = *limit
	}

	if clearWindow {
		updates["start_date"] = gorm.Expr("NULL")
		updates["end_date"] = gorm.Expr("NULL")
	}

	// Validate the resulting window, not just the supplied halves.
	newStart, newEnd := budget.StartDate, budget.EndDate
	if startDate != nil {
		newStart = startDate
	}
	if endDate != nil {
		newEnd = endDate
	}
	newStart, newEnd, err = normalizeWindow(newStart, newEnd)
	if err != nil {
		return nil, err
	}
	if startDate != nil {
		updates["start_date"] = newStart
	}
	if endDate != nil {
		updates["end_date"] = newEnd
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Budget{}).Where("id = ?", budget.ID).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetBudgetByID(userID, budgetID)
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Where("id = ?", budget.ID).Delete(&models.Budget{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetProgress compares window spend with the limit. Budgets without a
// complete window have no progress to report.
func (s *budgetService) GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}
	if !budget.HasWindow() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget has no start and end date")
	}

	spent, err := SpentInWindow(s.db, userID, budget.CategoryID, *budget.StartDate, *budget.EndDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var percentage float64
	if budget.LimitAmount.IsPositive() {
		percentage, _ = spent.Div(budget.LimitAmount).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	}

	return &BudgetProgress{
		BudgetID:   budget.ID,
		Limit:      budget.LimitAmount,
		Spent:      spent,
		Remaining:  budget.LimitAmount.Sub(spent),
		Percentage: percentage,
		Exceeded:   spent.GreaterThan(budget.LimitAmount),
		StartDate:  *budget.StartDate,
		EndDate:    *budget.EndDate,
	}, nil
}
