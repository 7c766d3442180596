package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Amount parses a decimal literal, failing loudly on typos.
func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Account %d", nextID()),
		Balance: decimal.Zero,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction inserts a transaction and its allocations directly,
// bypassing the service layer and budget evaluation.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID string, txType models.TransactionType, amount decimal.Decimal, date time.Time, allocations map[string]decimal.Decimal) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:    userID,
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Date:      models.DateOnly(date),
	}
	if err := db.Omit("Allocations").Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	for categoryID, allocated := range allocations {
		alloc := models.TransactionCategory{TransactionID: tx.ID, CategoryID: categoryID, AllocatedAmount: allocated}
		if err := db.Create(&alloc).Error; err != nil {
			t.Fatalf("failed to create test allocation: %v", err)
		}
		tx.Allocations = append(tx.Allocations, alloc)
	}
	return tx
}

// CreateTestBudget creates a budget with the given limit and window.
// Pass nil dates for a budget that is never evaluated.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID string, limit decimal.Decimal, start, end *time.Time) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Period:      "monthly",
		LimitAmount: limit,
		StartDate:   start,
		EndDate:     end,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates a goal with the given target.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target decimal.Decimal) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CountNotifications returns how many notifications userID has.
func CountNotifications(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	return n
}

// DatePtr returns a pointer to t.
func DatePtr(t time.Time) *time.Time {
	return &t
}
