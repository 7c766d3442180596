package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		goal, err := svc.CreateGoal(user.ID, "Emergency fund", testutil.Amount("5000"), testutil.Amount("250"), testutil.DatePtr(testutil.Date(2025, 12, 31)))
		testutil.AssertNoError(t, err)

		if goal.Name != "Emergency fund" {
			t.Errorf("unexpected name %q", goal.Name)
		}
		testutil.AssertDecimal(t, goal.TargetAmount, "5000")
		testutil.AssertDecimal(t, goal.CurrentAmount, "250")
		if goal.DueDate == nil {
			t.Error("expected due date")
		}
	})

	t.Run("invalid_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)

		tests := []struct {
			name            string
			goalName        string
			target, current decimal.Decimal
		}{
			{name: "empty_name", goalName: " ", target: testutil.Amount("1"), current: decimal.Zero},
			{name: "zero_target", goalName: "Car", target: decimal.Zero, current: decimal.Zero},
			{name: "negative_current", goalName: "Car", target: testutil.Amount("1"), current: testutil.Amount("-1")},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateGoal(user.ID, tt.goalName, tt.target, tt.current, nil)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})
}

func TestGetUserGoals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	testutil.CreateTestGoal(t, db, user.ID, testutil.Amount("100"))
	testutil.CreateTestGoal(t, db, user.ID, testutil.Amount("200"))
	testutil.CreateTestGoal(t, db, other.ID, testutil.Amount("300"))

	result, err := svc.GetUserGoals(user.ID, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 2 {
		t.Errorf("expected 2 goals, got %d", result.TotalItems)
	}
}

func TestUpdateGoal(t *testing.T) {
	t.Run("record_progress", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, testutil.Amount("1000"))

		current := testutil.Amount("400")
		updated, err := svc.UpdateGoal(user.ID, goal.ID, nil, nil, &current, nil)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, updated.CurrentAmount, "400")
		testutil.AssertDecimal(t, updated.TargetAmount, "1000")
	})

	t.Run("invalid_target", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, testutil.Amount("1000"))

		target := testutil.Amount("-5")
		_, err := svc.UpdateGoal(user.ID, goal.ID, nil, &target, nil, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewGoalService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		goal := testutil.CreateTestGoal(t, db, user.ID, testutil.Amount("1000"))

		name := "stolen"
		_, err := svc.UpdateGoal(other.ID, goal.ID, &name, nil, nil, nil)
		testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
	})
}

func TestDeleteGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewGoalService(db)
	user := testutil.CreateTestUser(t, db)
	goal := testutil.CreateTestGoal(t, db, user.ID, testutil.Amount("1000"))

	testutil.AssertNoError(t, svc.DeleteGoal(user.ID, goal.ID))

	_, err := svc.GetGoalByID(user.ID, goal.ID)
	testutil.AssertAppError(t, err, "GOAL_NOT_FOUND")
}
