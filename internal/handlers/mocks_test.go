package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

func emptyPage[T any](page pagination.PageRequest) *pagination.PageResponse[T] {
	page.Defaults()
	resp := pagination.NewPageResponse([]T{}, page, 0)
	return &resp
}

// --- users ---

type mockUserService struct {
	registerFn       func(username, email, password string) (*models.User, error)
	authenticateFn   func(username, password string) (*models.User, error)
	getUserByIDFn    func(id string) (*models.User, error)
	changePasswordFn func(userID, oldPassword, newPassword string) error
	deleteUserFn     func(userID string) error
	listUsersFn      func(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
}

func (m *mockUserService) Register(username, email, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(username, email, password)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Username: username, Email: email}, nil
}

func (m *mockUserService) Authenticate(username, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(username, password)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Username: username}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) ChangePassword(userID, oldPassword, newPassword string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(userID, oldPassword, newPassword)
	}
	return nil
}

func (m *mockUserService) DeleteUser(userID string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(userID)
	}
	return nil
}

func (m *mockUserService) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(page)
	}
	return emptyPage[models.User](page), nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- accounts ---

type mockAccountService struct {
	createAccountFn   func(userID, name string, balance decimal.Decimal) (*models.Account, error)
	getUserAccountsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	getAccountByIDFn  func(userID, accountID string) (*models.Account, error)
	updateAccountFn   func(userID, accountID string, name *string, balance *decimal.Decimal) (*models.Account, error)
	deleteAccountFn   func(userID, accountID string) error
}

func (m *mockAccountService) CreateAccount(userID, name string, balance decimal.Decimal) (*models.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(userID, name, balance)
	}
	return &models.Account{Base: models.Base{ID: testAcctID}, UserID: userID, Name: name, Balance: balance}, nil
}

func (m *mockAccountService) GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	if m.getUserAccountsFn != nil {
		return m.getUserAccountsFn(userID, page)
	}
	return emptyPage[models.Account](page), nil
}

func (m *mockAccountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	if m.getAccountByIDFn != nil {
		return m.getAccountByIDFn(userID, accountID)
	}
	return &models.Account{Base: models.Base{ID: accountID}, UserID: userID}, nil
}

func (m *mockAccountService) UpdateAccount(userID, accountID string, name *string, balance *decimal.Decimal) (*models.Account, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(userID, accountID, name, balance)
	}
	return &models.Account{Base: models.Base{ID: accountID}, UserID: userID}, nil
}

func (m *mockAccountService) DeleteAccount(userID, accountID string) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(userID, accountID)
	}
	return nil
}

var _ services.AccountServicer = (*mockAccountService)(nil)

// --- categories ---

type mockCategoryService struct {
	createCategoryFn  func(name, description string) (*models.Category, error)
	listCategoriesFn  func(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	getCategoryByIDFn func(categoryID string) (*models.Category, error)
	updateCategoryFn  func(categoryID string, name, description *string) (*models.Category, error)
	deleteCategoryFn  func(categoryID string) error
}

func (m *mockCategoryService) CreateCategory(name, description string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(name, description)
	}
	return &models.Category{Base: models.Base{ID: testCatID}, Name: name, Description: description}, nil
}

func (m *mockCategoryService) ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(page)
	}
	return emptyPage[models.Category](page), nil
}

func (m *mockCategoryService) GetCategoryByID(categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(categoryID)
	}
	return &models.Category{Base: models.Base{ID: categoryID}}, nil
}

func (m *mockCategoryService) UpdateCategory(categoryID string, name, description *string) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(categoryID, name, description)
	}
	return &models.Category{Base: models.Base{ID: categoryID}}, nil
}

func (m *mockCategoryService) DeleteCategory(categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(categoryID)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- transactions ---

type mockTransactionService struct {
	createTransactionFn      func(userID, accountID string, txType models.TransactionType, amount decimal.Decimal, description string, date time.Time, allocations []services.AllocationInput) (*models.Transaction, error)
	getUserTransactionsFn    func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getAccountTransactionsFn func(userID, accountID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn     func(userID, transactionID string) (*models.Transaction, error)
	updateTransactionFn      func(userID, transactionID string, accountID *string, amount *decimal.Decimal, description *string, date *time.Time, txType *models.TransactionType) (*models.Transaction, error)
	deleteTransactionFn      func(userID, transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(userID, accountID string, txType models.TransactionType, amount decimal.Decimal, description string, date time.Time, allocations []services.AllocationInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, accountID, txType, amount, description, date, allocations)
	}
	return &models.Transaction{Base: models.Base{ID: testItemID}, UserID: userID, AccountID: accountID, Type: txType, Amount: amount}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	return emptyPage[models.Transaction](page), nil
}

func (m *mockTransactionService) GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getAccountTransactionsFn != nil {
		return m.getAccountTransactionsFn(userID, accountID, page, filter)
	}
	return emptyPage[models.Transaction](page), nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{Base: models.Base{ID: transactionID}, UserID: userID}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID string, accountID *string, amount *decimal.Decimal, description *string, date *time.Time, txType *models.TransactionType) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, accountID, amount, description, date, txType)
	}
	return &models.Transaction{Base: models.Base{ID: transactionID}, UserID: userID}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- budgets ---

type mockBudgetService struct {
	createBudgetFn      func(userID, categoryID, period string, limit decimal.Decimal, startDate, endDate *time.Time) (*models.Budget, error)
	getUserBudgetsFn    func(userID string, page pagination.PageRequest, categoryID *string) (*pagination.PageResponse[models.Budget], error)
	getBudgetByIDFn     func(userID, budgetID string) (*models.Budget, error)
	updateBudgetFn      func(userID, budgetID string, categoryID, period *string, limit *decimal.Decimal, startDate, endDate *time.Time, clearWindow bool) (*models.Budget, error)
	deleteBudgetFn      func(userID, budgetID string) error
	getBudgetProgressFn func(userID, budgetID string) (*services.BudgetProgress, error)
}

func (m *mockBudgetService) CreateBudget(userID, categoryID, period string, limit decimal.Decimal, startDate, endDate *time.Time) (*models.Budget, error) {
	if m.createBudgetFn != nil {
		return m.createBudgetFn(userID, categoryID, period, limit, startDate, endDate)
	}
	return &models.Budget{Base: models.Base{ID: testItemID}, UserID: userID, CategoryID: categoryID, Period: period, LimitAmount: limit, StartDate: startDate, EndDate: endDate}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID string, page pagination.PageRequest, categoryID *string) (*pagination.PageResponse[models.Budget], error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID, page, categoryID)
	}
	return emptyPage[models.Budget](page), nil
}

func (m *mockBudgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	if m.getBudgetByIDFn != nil {
		return m.getBudgetByIDFn(userID, budgetID)
	}
	return &models.Budget{Base: models.Base{ID: budgetID}, UserID: userID}, nil
}

func (m *mockBudgetService) UpdateBudget(userID, budgetID string, categoryID, period *string, limit *decimal.Decimal, startDate, endDate *time.Time, clearWindow bool) (*models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(userID, budgetID, categoryID, period, limit, startDate, endDate, clearWindow)
	}
	return &models.Budget{Base: models.Base{ID: budgetID}, UserID: userID}, nil
}

func (m *mockBudgetService) DeleteBudget(userID, budgetID string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(userID, budgetID)
	}
	return nil
}

func (m *mockBudgetService) GetBudgetProgress(userID, budgetID string) (*services.BudgetProgress, error) {
	if m.getBudgetProgressFn != nil {
		return m.getBudgetProgressFn(userID, budgetID)
	}
	return &services.BudgetProgress{BudgetID: budgetID}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

// --- goals ---

type mockGoalService struct {
	createGoalFn   func(userID, name string, target, current decimal.Decimal, dueDate *time.Time) (*models.Goal, error)
	getUserGoalsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	getGoalByIDFn  func(userID, goalID string) (*models.Goal, error)
	updateGoalFn   func(userID, goalID string, name *string, target, current *decimal.Decimal, dueDate *time.Time) (*models.Goal, error)
	deleteGoalFn   func(userID, goalID string) error
}

func (m *mockGoalService) CreateGoal(userID, name string, target, current decimal.Decimal, dueDate *time.Time) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, name, target, current, dueDate)
	}
	return &models.Goal{Base: models.Base{ID: testItemID}, UserID: userID, Name: name, TargetAmount: target, CurrentAmount: current, DueDate: dueDate}, nil
}

func (m *mockGoalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID, page)
	}
	return emptyPage[models.Goal](page), nil
}

func (m *mockGoalService) GetGoalByID(userID, goalID string) (*models.Goal, error) {
	if m.getGoalByIDFn != nil {
		return m.getGoalByIDFn(userID, goalID)
	}
	return &models.Goal{Base: models.Base{ID: goalID}, UserID: userID}, nil
}

func (m *mockGoalService) UpdateGoal(userID, goalID string, name *string, target, current *decimal.Decimal, dueDate *time.Time) (*models.Goal, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(userID, goalID, name, target, current, dueDate)
	}
	return &models.Goal{Base: models.Base{ID: goalID}, UserID: userID}, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

// --- notifications ---

type mockNotificationService struct {
	getUserNotificationsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Notification], error)
}

func (m *mockNotificationService) GetUserNotifications(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Notification], error) {
	if m.getUserNotificationsFn != nil {
		return m.getUserNotificationsFn(userID, page)
	}
	return emptyPage[models.Notification](page), nil
}

var _ services.NotificationServicer = (*mockNotificationService)(nil)

// --- analytics ---

type mockAnalyticsService struct {
	getDashboardFn          func(userID string) (*services.DashboardSummary, error)
	getSpendingTrendsFn     func(userID string) ([]services.MonthlyTrend, error)
	getExpensesByCategoryFn func(userID string) ([]services.CategoryExpense, error)
	expenseReportPDFFn      func(userID string) ([]byte, error)
}

func (m *mockAnalyticsService) GetDashboard(userID string) (*services.DashboardSummary, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(userID)
	}
	return &services.DashboardSummary{}, nil
}

func (m *mockAnalyticsService) GetSpendingTrends(userID string) ([]services.MonthlyTrend, error) {
	if m.getSpendingTrendsFn != nil {
		return m.getSpendingTrendsFn(userID)
	}
	return []services.MonthlyTrend{}, nil
}

func (m *mockAnalyticsService) GetExpensesByCategory(userID string) ([]services.CategoryExpense, error) {
	if m.getExpensesByCategoryFn != nil {
		return m.getExpensesByCategoryFn(userID)
	}
	return []services.CategoryExpense{}, nil
}

func (m *mockAnalyticsService) ExpenseReportPDF(userID string) ([]byte, error) {
	if m.expenseReportPDFFn != nil {
		return m.expenseReportPDFFn(userID)
	}
	return []byte("%PDF-1.3\n"), nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)
