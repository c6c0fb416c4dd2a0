// Package testutil provides test helpers: assertions and a fake upstream
// remote source.
package testutil

import (
	"errors"
	"testing"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertValidationReason checks that err is a validation rejection carrying
// the exact human-readable reason.
func AssertValidationReason(t *testing.T, err error, reason string) {
	t.Helper()

	AssertAppError(t, err, apperrors.ErrValidationFailed.Code)
	if err != nil && err.Error() != reason {
		t.Errorf("expected rejection reason %q, got %q", reason, err.Error())
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
