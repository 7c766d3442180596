package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/goals", handler.CreateGoal)
	auth.GET("/goals", handler.GetGoals)
	auth.GET("/goals/:id", handler.GetGoal)
	auth.PUT("/goals/:id", handler.UpdateGoal)
	auth.DELETE("/goals/:id", handler.DeleteGoal)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("current amount defaults to zero", func(t *testing.T) {
		var gotTarget, gotCurrent decimal.Decimal
		var gotDue *time.Time
		goalSvc := &mockGoalService{
			createGoalFn: func(userID, name string, target, current decimal.Decimal, due *time.Time) (*models.Goal, error) {
				gotTarget, gotCurrent, gotDue = target, current, due
				return &models.Goal{Base: models.Base{ID: testItemID}, UserID: userID, Name: name, TargetAmount: target}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupGoalRouter(NewGoalHandler(goalSvc, audit))

		rec := doRequest(r, "POST", "/goals", `{"name":"Vacation","target_amount":"5000.00","due_date":"2025-06-30"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotTarget.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected target 5000, got %s", gotTarget)
		}
		if !gotCurrent.IsZero() {
			t.Errorf("expected zero current, got %s", gotCurrent)
		}
		if gotDue == nil || !gotDue.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected due date %v", gotDue)
		}
		audit.assertLogged(t, "CREATE_GOAL")
	})

	t.Run("returns 400 on invalid amounts", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		for _, body := range []string{
			`{"name":"Car","target_amount":"0"}`,
			`{"name":"Car","target_amount":"100","current_amount":"-1"}`,
			`{"target_amount":"100"}`,
		} {
			rec := doRequest(r, "POST", "/goals", body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, rec.Code)
			}
		}
	})
}

func TestGoalHandler_GetGoal(t *testing.T) {
	goalSvc := &mockGoalService{
		getGoalByIDFn: func(_, _ string) (*models.Goal, error) {
			return nil, apperrors.ErrGoalNotFound
		},
	}
	r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/goals/"+testItemID, "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_FOUND")
}

func TestGoalHandler_GetGoals(t *testing.T) {
	r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

	rec := doRequest(r, "GET", "/goals", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGoalHandler_UpdateGoal(t *testing.T) {
	var gotCurrent *decimal.Decimal
	goalSvc := &mockGoalService{
		updateGoalFn: func(_, goalID string, _ *string, _, current *decimal.Decimal, _ *time.Time) (*models.Goal, error) {
			gotCurrent = current
			return &models.Goal{Base: models.Base{ID: goalID}}, nil
		},
	}
	r := setupGoalRouter(NewGoalHandler(goalSvc, &mockAuditService{}))

	rec := doRequest(r, "PUT", "/goals/"+testItemID, `{"current_amount":"1200.50"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotCurrent == nil || !gotCurrent.Equal(decimal.RequireFromString("1200.50")) {
		t.Errorf("expected current 1200.50, got %v", gotCurrent)
	}
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	audit := &mockAuditService{}
	r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, audit))

	rec := doRequest(r, "DELETE", "/goals/"+testItemID, "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	audit.assertLogged(t, "DELETE_GOAL")
}
