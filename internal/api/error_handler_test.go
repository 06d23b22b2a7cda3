package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/fail", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodPost, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest, "Логин уже занят"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Неверный логин или пароль"},
		{"wrong current password", domain.ErrWrongPassword, http.StatusUnauthorized, "Неверный текущий пароль"},
		{"short new password", domain.ErrNewPasswordTooShort, http.StatusBadRequest, "Новый пароль должен быть минимум 4 символа"},
		{"not admin", domain.ErrNotAdmin, http.StatusForbidden, "Нет прав администратора"},
		{"super admin immutable", domain.ErrSuperAdminImmutable, http.StatusForbidden, "Невозможно забрать права у супер-админа"},
		{"reset throttled", domain.ErrTooManyResets, http.StatusTooManyRequests, "Слишком много запросов, попробуйте позже"},
		{"novel missing", domain.ErrNovelNotFound, http.StatusNotFound, "Novel not found"},
		{"admin query required", domain.ErrAdminRequired, http.StatusForbidden, "Admin access required"},
		{"project missing", domain.ErrProjectNotFound, http.StatusNotFound, "Project not found"},
		{"upload without file", domain.ErrNoFile, http.StatusBadRequest, "No file provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveError(t, tt.err)
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if body.Error != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, body.Error)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec, body := serveError(t, errors.Join(errors.New("create user"), domain.ErrUserExists))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped ErrUserExists, got %d", rec.Code)
	}
	if body.Error != "Логин уже занят" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := serveError(t, errors.New("pq: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("database detail leaked to client: %q", body.Error)
	}
}

func TestErrorHandler_MethodNotAllowed(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/api/novel", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodDelete, "/api/novel", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	if body.Error != "Method not allowed" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}
