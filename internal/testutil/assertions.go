package testutil

import (
	"errors"
	"testing"

	apperrors "finbot/internal/errors"
)

// AssertAppError fails the test unless err unwraps to an *AppError carrying
// the given code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatalf("want AppError %q, got nil", code)
	case !errors.As(err, &appErr):
		t.Fatalf("want *AppError, got %T: %v", err, err)
	case appErr.Code != code:
		t.Errorf("want code %q, got %q (%s)", code, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test immediately if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
