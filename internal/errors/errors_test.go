package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != ErrInternalServer.Code {
		t.Errorf("expected code %q, got %q", ErrInternalServer.Code, err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped error to unwrap to the cause")
	}
	if err.Error() != ErrInternalServer.Message {
		t.Errorf("expected public message %q, got %q", ErrInternalServer.Message, err.Error())
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "amount must be greater than zero")
	if err.Message != "amount must be greater than zero" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", err.StatusCode)
	}
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is to match the sentinel by code")
	}
}

func TestWithStatus(t *testing.T) {
	err := WithStatus(ErrAccountNotFound, http.StatusBadRequest)
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", err.StatusCode)
	}
	if err.Code != "ACCOUNT_NOT_FOUND" {
		t.Errorf("expected code ACCOUNT_NOT_FOUND, got %q", err.Code)
	}
	if ErrAccountNotFound.StatusCode != http.StatusNotFound {
		t.Error("sentinel must not be mutated")
	}
}

func TestIs_DifferentCodes(t *testing.T) {
	if stderrors.Is(ErrBudgetNotFound, ErrGoalNotFound) {
		t.Error("different codes must not match")
	}
	if stderrors.Is(ErrBudgetNotFound, fmt.Errorf("plain")) {
		t.Error("plain errors must not match")
	}
}
