package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("record", "E1_Alice")

	expected := "record with ID E1_Alice not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("mobile", "12345", "must be 10 digits")

	expected := "validation failed for field mobile: must be 10 digits"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}

	// Without field
	err2 := &ValidationError{Message: "record is malformed"}
	if err2.Error() != "validation failed: record is malformed" {
		t.Errorf("unexpected message: %q", err2.Error())
	}
}

func TestIOError(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewIOError("write", "offboard_data", underlying)

	if !errors.Is(err, underlying) {
		t.Error("IOError should unwrap to underlying error")
	}

	expected := "IO error during write of offboard_data: permission denied"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestReconcileError(t *testing.T) {
	underlying := errors.New("sheet not reachable")
	err := NewReconcileError("materialize", "could not rewrite output sheets", underlying)

	if !errors.Is(err, underlying) {
		t.Error("ReconcileError should unwrap to underlying error")
	}

	expected := "reconciliation failed during materialize: could not rewrite output sheets"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestWrapHelpers(t *testing.T) {
	if WrapIO("read", "hr_data", nil) != nil {
		t.Error("WrapIO(nil) should return nil")
	}
	if WrapParse("yaml", "workbook.yaml", nil) != nil {
		t.Error("WrapParse(nil) should return nil")
	}
	if WrapValidation("email", nil) != nil {
		t.Error("WrapValidation(nil) should return nil")
	}

	wrapped := WrapParse("yaml", "workbook.yaml", fmt.Errorf("bad indent"))
	var parseErr *ParseError
	if !errors.As(wrapped, &parseErr) {
		t.Error("WrapParse should produce a *ParseError")
	}
	if parseErr.File != "workbook.yaml" {
		t.Errorf("File = %q, want workbook.yaml", parseErr.File)
	}
}
