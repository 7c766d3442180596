package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
	evaluator      BudgetEvaluator
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer, evaluator BudgetEvaluator) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
		evaluator:      evaluator,
	}
}

// CreateTransaction records a transaction and its category allocations in
// one database transaction. For expenses, every allocated category's budgets
// are evaluated after commit; evaluation failures are logged and never undo
// or fail the recorded transaction.
func (s *transactionService) CreateTransaction(
	userID, accountID string,
	transactionType models.TransactionType,
	amount decimal.Decimal,
	description string,
	date time.Time,
	allocations []AllocationInput,
) (*models.Transaction, error) {
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if accountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}

	// Default date to today if not provided
	if date.IsZero() {
		date = time.Now()
	}
	date = models.DateOnly(date)

	if err := s.checkAccount(userID, accountID); err != nil {
		return nil, err
	}

	if err := s.validateAllocations(allocations); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Allocations").Create(transaction).Error; err != nil {
			return err
		}
		if len(allocations) == 0 {
			return nil
		}
		rows := make([]models.TransactionCategory, 0, len(allocations))
		for _, a := range allocations {
			rows = append(rows, models.TransactionCategory{
				TransactionID:   transaction.ID,
				CategoryID:      a.CategoryID,
				AllocatedAmount: a.AllocatedAmount,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if transactionType == models.TransactionTypeExpense {
		s.evaluateBudgets(userID, transaction.ID, allocations)
	}

	return s.GetTransactionByID(userID, transaction.ID)
}

// checkAccount verifies the user owns accountID. A missing account is a bad
// request here, not a missing resource.
func (s *transactionService) checkAccount(userID, accountID string) error {
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return apperrors.WithStatus(apperrors.ErrAccountNotFound, http.StatusBadRequest)
		}
		return err
	}
	return nil
}

// validateAllocations rejects repeated or unknown categories before anything
// is written.
func (s *transactionService) validateAllocations(allocations []AllocationInput) error {
	if len(allocations) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(allocations))
	ids := make([]string, 0, len(allocations))
	for _, a := range allocations {
		if strings.TrimSpace(a.CategoryID) == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required for each allocation")
		}
		if !a.AllocatedAmount.IsPositive() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "allocated amount must be greater than zero")
		}
		if _, dup := seen[a.CategoryID]; dup {
			return apperrors.WithMessage(apperrors.ErrDuplicateAllocation,
				fmt.Sprintf("category %s is allocated more than once", a.CategoryID))
		}
		seen[a.CategoryID] = struct{}{}
		ids = append(ids, a.CategoryID)
	}

	var found []string
	if err := s.db.Model(&models.Category{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(found) == len(ids) {
		return nil
	}

	known := make(map[string]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return apperrors.WithStatus(
				apperrors.WithMessage(apperrors.ErrCategoryNotFound, fmt.Sprintf("category %s not found", id)),
				http.StatusBadRequest)
		}
	}
	return nil
}

// evaluateBudgets runs the evaluator once per allocated category. Each
// category is independent of the others.
func (s *transactionService) evaluateBudgets(userID, transactionID string, allocations []AllocationInput) {
	if s.evaluator == nil {
		return
	}
	for _, a := range allocations {
		if err := s.evaluator.OnAllocationRecorded(userID, a.CategoryID); err != nil {
			logger.Named("transactions").Errorw("budget evaluation failed",
				"error", err,
				"user_id", userID,
				"transaction_id", transactionID,
				"category_id", a.CategoryID,
			)
		}
	}
}

// GetUserTransactions retrieves a paginated, filtered list of the user's transactions.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	return s.listTransactions(s.db.Model(&models.Transaction{}).Where("user_id = ?", userID), page, filter)
}

// GetAccountTransactions retrieves a paginated, filtered list of transactions for a specific account.
func (s *transactionService) GetAccountTransactions(userID, accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	// First verify the account belongs to the user
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		return nil, err
	}

	filter.AccountID = &accountID
	return s.listTransactions(s.db.Model(&models.Transaction{}).Where("user_id = ?", userID), page, filter)
}

func (s *transactionService) listTransactions(base *gorm.DB, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Preload("Allocations.Category").
		Scopes(pagination.Ordered("date DESC"), pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", models.DateOnly(*f.FromDate))
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", models.DateOnly(*f.ToDate))
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	if f.CategoryID != nil {
		q = q.Where("id IN (?)", q.Session(&gorm.Session{NewDB: true}).
			Model(&models.TransactionCategory{}).
			Select("transaction_id").
			Where("category_id = ?", *f.CategoryID))
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Allocations.Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction changes a transaction's own fields, including moving it to
// another account the user owns. Allocations are left as they are and budgets
// are not re-evaluated.
func (s *transactionService) UpdateTransaction(
	userID, transactionID string,
	accountID *string,
	amount *decimal.Decimal,
	description *string,
	date *time.Time,
	transactionType *models.TransactionType,
) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if accountID != nil && *accountID != transaction.AccountID {
		if err := s.checkAccount(userID, *accountID); err != nil {
			return nil, err
		}
		updates["account_id"] = *accountID
	}
	if amount != nil {
		if !amount.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		updates["amount"] = *amount
	}
	if description != nil {
		updates["description"] = *description
	}
	if date != nil {
		updates["date"] = models.DateOnly(*date)
	}
	if transactionType != nil {
		if !transactionType.Valid() {
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *transactionType
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Transaction{}).Where("id = ?", transaction.ID).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction deletes a transaction and its allocations.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return deleteTransactionsWhere(tx, "id = ?", transaction.ID)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
