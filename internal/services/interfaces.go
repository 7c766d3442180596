package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, email, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ChangePassword(userID, oldPassword, newPassword string) error
	DeleteUser(userID string) error
	ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name string, balance decimal.Decimal) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID string, name *string, balance *decimal.Decimal) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
}

// CategoryServicer defines the contract for category-related business logic.
// Categories are shared by all users.
type CategoryServicer interface {
	CreateCategory(name, description string) (*models.Category, error)
	ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(categoryID string) (*models.Category, error)
	UpdateCategory(categoryID string, name, description *string) (*models.Category, error)
	DeleteCategory(categoryID string) error
}

// AllocationInput assigns part of a new transaction to a category.
type AllocationInput struct {
	CategoryID      string
	AllocatedAmount decimal.Decimal
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	AccountID  *string
	CategoryID *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, accountID string, transactionType models.TransactionType, amount decimal.Decimal, description string, date time.Time, allocations []AllocationInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, accountID *string, amount *decimal.Decimal, description *string, date *time.Time, transactionType *models.TransactionType) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetProgress contains spending vs limit for a budget's window.
type BudgetProgress struct {
	BudgetID   string          `json:"budget_id"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Exceeded   bool            `json:"exceeded"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID, period string, limit decimal.Decimal, startDate, endDate *time.Time) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, categoryID *string) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, categoryID, period *string, limit *decimal.Decimal, startDate, endDate *time.Time, clearWindow bool) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error)
}

// BudgetEvaluator checks a user's budgets for one category after new
// spending has been recorded against it.
type BudgetEvaluator interface {
	OnAllocationRecorded(userID, categoryID string) error
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(userID, name string, target, current decimal.Decimal, dueDate *time.Time) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(userID, goalID string) (*models.Goal, error)
	UpdateGoal(userID, goalID string, name *string, target, current *decimal.Decimal, dueDate *time.Time) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
}

// NotificationServicer lists notifications raised for a user.
type NotificationServicer interface {
	GetUserNotifications(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Notification], error)
}

// DashboardSummary holds lifetime income and expense totals.
type DashboardSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetSavings   decimal.Decimal `json:"net_savings"`
}

// MonthlyTrend is the expense total for one calendar month ("YYYY-MM").
type MonthlyTrend struct {
	Month        string          `json:"month"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// CategoryExpense is the total allocated to one category by expenses.
type CategoryExpense struct {
	Category     string          `json:"category"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// AnalyticsServicer defines read-only aggregate queries.
type AnalyticsServicer interface {
	GetDashboard(userID string) (*DashboardSummary, error)
	GetSpendingTrends(userID string) ([]MonthlyTrend, error)
	GetExpensesByCategory(userID string) ([]CategoryExpense, error)
	ExpenseReportPDF(userID string) ([]byte, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
