package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes and
//     the client-facing messages the front-end matches on (the auth strings
//     are Russian and must stay byte-identical).
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, 405, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusMethodNotAllowed {
			return he.Code, "Method not allowed"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes and messages.
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Логин и пароль обязательны"
	case errors.Is(err, domain.ErrUsernameTooShort):
		return http.StatusBadRequest, "Логин должен быть минимум 3 символа"
	case errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, "Пароль должен быть минимум 4 символа"
	case errors.Is(err, domain.ErrNewPasswordTooShort):
		return http.StatusBadRequest, "Новый пароль должен быть минимум 4 символа"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "Логин уже занят"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Неверный логин или пароль"
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, "Неверный текущий пароль"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Пользователь не найден"
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden, "Нет прав администратора"
	case errors.Is(err, domain.ErrSuperAdminImmutable):
		return http.StatusForbidden, "Невозможно забрать права у супер-админа"
	case errors.Is(err, domain.ErrMissingUsernames):
		return http.StatusBadRequest, "Требуются оба логина"
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Все поля обязательны"
	case errors.Is(err, domain.ErrMissingProfile):
		return http.StatusBadRequest, "Логин и данные профиля обязательны"
	case errors.Is(err, domain.ErrMissingEmail):
		return http.StatusBadRequest, "Email обязателен"
	case errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusBadRequest, "Некорректные данные профиля"
	case errors.Is(err, domain.ErrTooManyResets):
		return http.StatusTooManyRequests, "Слишком много запросов, попробуйте позже"
	case errors.Is(err, domain.ErrNovelNotFound):
		return http.StatusNotFound, "Novel not found"
	case errors.Is(err, domain.ErrAdminRequired):
		return http.StatusForbidden, "Admin access required"
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "Project not found"
	case errors.Is(err, domain.ErrNoUpdates):
		return http.StatusBadRequest, "No updates provided"
	case errors.Is(err, domain.ErrNoFile):
		return http.StatusBadRequest, "No file provided"
	case errors.Is(err, domain.ErrInvalidFileData):
		return http.StatusBadRequest, "Invalid file data"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
