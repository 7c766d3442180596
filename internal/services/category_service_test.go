package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory(" Groceries ", "Food and household")
		testutil.AssertNoError(t, err)

		if cat.Name != "Groceries" {
			t.Errorf("expected trimmed name, got %q", cat.Name)
		}
		if cat.Description != "Food and household" {
			t.Errorf("unexpected description %q", cat.Description)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		testutil.CreateTestCategoryWithName(t, db, "Rent")

		_, err := svc.CreateCategory("Rent", "")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("  ", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	for _, name := range []string{"Utilities", "Food", "Rent"} {
		testutil.CreateTestCategoryWithName(t, db, name)
	}

	result, err := svc.ListCategories(pagination.PageRequest{})
	testutil.AssertNoError(t, err)

	want := []string{"Food", "Rent", "Utilities"}
	if len(result.Data) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(result.Data))
	}
	for i, name := range want {
		if result.Data[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, result.Data[i].Name)
		}
	}
}

func TestUpdateCategory(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Fod")

		name := "Food"
		updated, err := svc.UpdateCategory(cat.ID, &name, nil)
		testutil.AssertNoError(t, err)
		if updated.Name != "Food" {
			t.Errorf("expected Food, got %q", updated.Name)
		}
	})

	t.Run("keep_own_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Food")

		name := "Food"
		desc := "Meals"
		updated, err := svc.UpdateCategory(cat.ID, &name, &desc)
		testutil.AssertNoError(t, err)
		if updated.Description != "Meals" {
			t.Errorf("expected description Meals, got %q", updated.Description)
		}
	})

	t.Run("taken_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		testutil.CreateTestCategoryWithName(t, db, "Food")
		cat := testutil.CreateTestCategoryWithName(t, db, "Rent")

		name := "Food"
		_, err := svc.UpdateCategory(cat.ID, &name, nil)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		name := "Food"
		_, err := svc.UpdateCategory("0190a5b2-7c3e-7a1b-8c9d-0123456789ab", &name, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)
	user := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)
	food := testutil.CreateTestCategory(t, db)
	rent := testutil.CreateTestCategory(t, db)
	tx := testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionTypeExpense, testutil.Amount("100"), testutil.Date(2024, 1, 1),
		map[string]decimal.Decimal{food.ID: testutil.Amount("60"), rent.ID: testutil.Amount("40")})
	testutil.CreateTestBudget(t, db, user.ID, food.ID, testutil.Amount("100"), nil, nil)

	testutil.AssertNoError(t, svc.DeleteCategory(food.ID))

	_, err := svc.GetCategoryByID(food.ID)
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	if n := countRows(t, db, &models.Budget{}); n != 0 {
		t.Errorf("expected budgets removed, got %d", n)
	}

	var remaining []models.TransactionCategory
	if err := db.Where("transaction_id = ?", tx.ID).Find(&remaining).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].CategoryID != rent.ID {
		t.Errorf("expected only the rent allocation to remain, got %+v", remaining)
	}
	if n := countRows(t, db, &models.Transaction{}); n != 1 {
		t.Errorf("expected the transaction kept, got %d", n)
	}
}
