package testutil_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "accounts", "categories", "transactions", "transaction_categories", "budgets", "goals", "notifications", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	db1 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db1)
	db2 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db2)

	testutil.CreateTestUser(t, db1)

	var count int64
	db2.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected second database to be empty, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	account := testutil.CreateTestAccount(t, db, user.ID)
	category := testutil.CreateTestCategory(t, db)

	tx := testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionTypeExpense,
		testutil.Amount("25.50"), testutil.Date(2024, 1, 10),
		map[string]decimal.Decimal{category.ID: testutil.Amount("25.50")})
	if len(tx.Allocations) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(tx.Allocations))
	}

	var stored models.Transaction
	if err := db.Preload("Allocations").First(&stored, "id = ?", tx.ID).Error; err != nil {
		t.Fatalf("failed to load transaction: %v", err)
	}
	testutil.AssertDecimal(t, stored.Amount, "25.50")
	testutil.AssertDecimal(t, stored.Allocations[0].AllocatedAmount, "25.50")

	start, end := testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 31)
	budget := testutil.CreateTestBudget(t, db, user.ID, category.ID, testutil.Amount("100"), &start, &end)
	if !budget.HasWindow() {
		t.Error("expected budget to have a window")
	}

	goal := testutil.CreateTestGoal(t, db, user.ID, testutil.Amount("1000"))
	testutil.AssertDecimal(t, goal.TargetAmount, "1000")

	if n := testutil.CountNotifications(t, db, user.ID); n != 0 {
		t.Errorf("expected no notifications, got %d", n)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	alloc := models.TransactionCategory{TransactionID: "missing-tx", CategoryID: "missing-cat", AllocatedAmount: decimal.NewFromInt(1)}
	if err := db.Create(&alloc).Error; err == nil {
		t.Error("expected foreign key violation for orphan allocation")
	}
}

func TestAssertAppError(t *testing.T) {
	// Exercise the happy path; failure paths call t.Fatalf.
	testutil.AssertAppError(t, errors.ErrNotFound, "NOT_FOUND")
	testutil.AssertAppError(t, fmt.Errorf("wrapped: %w", errors.ErrGoalNotFound), "GOAL_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
