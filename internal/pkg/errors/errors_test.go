package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_ErrorFormatting(t *testing.T) {
	e := New(CodeTemplateNotFound, "process template not found", http.StatusNotFound)
	if got, want := e.Error(), "TEMPLATE_NOT_FOUND: process template not found"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(fmt.Errorf("row missing"), CodeTemplateNotFound, "process template not found", http.StatusNotFound)
	if got := wrapped.Error(); got != "TEMPLATE_NOT_FOUND: process template not found: row missing" {
		t.Fatalf("wrapped Error() = %q", got)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("db down")
	e := Wrap(inner, "INTERNAL_ERROR", "storage failure", http.StatusInternalServerError)
	if !errors.Is(e, inner) {
		t.Fatal("errors.Is should match the wrapped error")
	}

	var appErr *AppError
	if !errors.As(error(e), &appErr) {
		t.Fatal("errors.As should extract *AppError")
	}
}

func TestConstructors_HTTPStatus(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NotFound("X", "m"), http.StatusNotFound},
		{BadRequest("X", "m"), http.StatusBadRequest},
		{Unauthorized("X", "m"), http.StatusUnauthorized},
		{Forbidden("X", "m"), http.StatusForbidden},
		{Conflict("X", "m"), http.StatusConflict},
		{Internal("X", "m"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.HTTPStatus != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.err.Code, tc.err.HTTPStatus, tc.want)
		}
	}
}

func TestDomainConstructors(t *testing.T) {
	nf := ErrTemplateNotFoundf(42)
	if nf.HTTPStatus != http.StatusNotFound || nf.Code != CodeTemplateNotFound {
		t.Fatalf("unexpected not-found error: %+v", nf)
	}
	if nf.Params["template_id"] != 42 {
		t.Fatalf("params template_id = %v, want 42", nf.Params["template_id"])
	}

	conflict := ErrTemplateNotDraftf(7, "ACTIVE")
	if conflict.HTTPStatus != http.StatusConflict || conflict.Code != CodeTemplateNotDraft {
		t.Fatalf("unexpected conflict error: %+v", conflict)
	}
	if conflict.Params["status"] != "ACTIVE" {
		t.Fatalf("params status = %v, want ACTIVE", conflict.Params["status"])
	}

	transition := ErrInvalidTransitionf(7, "SUPERSEDED", "ACTIVE")
	if transition.HTTPStatus != http.StatusConflict {
		t.Fatalf("transition status = %d, want 409", transition.HTTPStatus)
	}

	validation := ErrValidationFailedf([]FieldError{{Field: "name", Code: "REQUIRED"}})
	if validation.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("validation status = %d, want 400", validation.HTTPStatus)
	}
	if len(validation.FieldErrors) != 1 || validation.FieldErrors[0].Field != "name" {
		t.Fatalf("field errors = %+v", validation.FieldErrors)
	}
}

func TestIsAppError(t *testing.T) {
	if _, ok := IsAppError(errors.New("plain")); ok {
		t.Fatal("plain error should not be an AppError")
	}
	wrapped := fmt.Errorf("outer: %w", Conflict("X", "m"))
	appErr, ok := IsAppError(wrapped)
	if !ok || appErr.Code != "X" {
		t.Fatalf("IsAppError = (%v, %v)", appErr, ok)
	}
}
