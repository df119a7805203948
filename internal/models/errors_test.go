package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", NewValidationError("All fields are required."), fiber.StatusBadRequest},
		{"Not found", NewNotFoundError("Post not found."), fiber.StatusNotFound},
		{"Conflict", NewConflictError("Email already exists."), fiber.StatusConflict},
		{"Internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"Wrapped", fmt.Errorf("outer: %w", NewNotFoundError("x")), fiber.StatusNotFound},
		{"Plain error", errors.New("plain"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause)

	assert.Equal(t, "Internal server error: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.Equal(t, "Post not found.", NewNotFoundError("Post not found.").Error())
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		want       ErrorResponse
	}{
		{
			name:       "AppError without cause",
			err:        NewConflictError("Email already exists."),
			wantStatus: fiber.StatusConflict,
			want:       ErrorResponse{Message: "Email already exists.", Code: CodeConflict},
		},
		{
			name:       "AppError with cause",
			err:        &AppError{Code: CodeInternal, Message: "Error fetching posts", Err: errors.New("db down")},
			wantStatus: fiber.StatusInternalServerError,
			want:       ErrorResponse{Message: "Error fetching posts", Code: CodeInternal, Error: "db down"},
		},
		{
			name:       "Plain error",
			err:        errors.New("unexpected"),
			wantStatus: fiber.StatusInternalServerError,
			want:       ErrorResponse{Message: "Internal server error", Code: CodeInternal, Error: "unexpected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return RespondWithError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
