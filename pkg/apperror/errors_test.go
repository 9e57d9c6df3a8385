package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestGetAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "app error passes through",
			err:      ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "Resource not found",
		},
		{
			name:     "wrapped app error unwraps",
			err:      fmt.Errorf("loading sale: %w", ErrForbidden),
			wantCode: http.StatusForbidden,
			wantMsg:  "Forbidden",
		},
		{
			name:     "plain error becomes 500",
			err:      errors.New("connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetAppError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(ErrInsufficientStock) {
		t.Error("IsAppError(ErrInsufficientStock) = false, want true")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("IsAppError(plain error) = true, want false")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Product")
	if err.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want %d", err.Code, http.StatusNotFound)
	}
	if err.Message != "Product not found" {
		t.Errorf("Message = %q, want %q", err.Message, "Product not found")
	}
}
