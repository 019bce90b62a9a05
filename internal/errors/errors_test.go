package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeNotFound, http.StatusNotFound},
		{CodeForbidden, http.StatusForbidden},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeInternal, http.StatusInternalServerError},
		{Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := NotFound("bookmark not found")
	if !Is(err, ErrNotFound) {
		t.Errorf("Is(NotFound(...), ErrNotFound) = false, want true")
	}
	if Is(err, ErrForbidden) {
		t.Errorf("Is(NotFound(...), ErrForbidden) = true, want false")
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := fmt.Errorf("redis unavailable")
	err := Internal(cause)

	if err.Message != "server error" {
		t.Errorf("Internal() message = %q, want opaque %q", err.Message, "server error")
	}
	if Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", Unwrap(err), cause)
	}
	if !Is(err, ErrInternal) {
		t.Errorf("Is(Internal(...), ErrInternal) = false, want true")
	}
}

func TestAs(t *testing.T) {
	var domainErr *Error
	err := fmt.Errorf("wrapped: %w", AlreadyExists("email already registered"))
	if !As(err, &domainErr) {
		t.Fatalf("As() failed on wrapped *Error")
	}
	if domainErr.Code != CodeAlreadyExists {
		t.Errorf("Code = %s, want %s", domainErr.Code, CodeAlreadyExists)
	}
}
