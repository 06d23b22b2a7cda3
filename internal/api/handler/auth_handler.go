package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kotatsu-vn/novel-backend/internal/api/metrics"
	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// AuthHandler serves the action-dispatched auth/profile endpoint.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Handle dispatches POST /api/auth by the envelope's action field.
//
// @Summary      Account, profile, and admin operations
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authEnvelope  true  "Action envelope"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var env authEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	switch env.Action {
	case actionRegister:
		return h.register(c, body)
	case actionLogin:
		return h.login(c, body)
	case actionSaveProfile:
		return h.saveProfile(c, body)
	case actionChangePassword:
		return h.changePassword(c, body)
	case actionSetAdmin:
		return h.setAdmin(c, body)
	case actionGetAllUsers:
		return h.getAllUsers(c, body)
	case actionAdminSetPassword:
		return h.adminSetPassword(c, body)
	case actionResetPassword:
		return h.resetPassword(c, body)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown action")
	}
}

func (h *AuthHandler) register(c echo.Context, body []byte) error {
	var req registerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Register(c.Request().Context(), req.Username, req.Password, req.Email, req.CreatedAt)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, registerResponse{
		Success:  true,
		UserID:   res.UserID,
		Username: res.Username,
		Profile:  res.Profile,
	})
}

func (h *AuthHandler) login(c echo.Context, body []byte) error {
	var req loginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Success:  true,
		UserID:   res.UserID,
		Username: res.Username,
		Profile:  res.Profile,
		IsAdmin:  res.IsAdmin,
		Token:    res.Token,
	})
}

func (h *AuthHandler) saveProfile(c echo.Context, body []byte) error {
	var req saveProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SaveProfile(c.Request().Context(), req.Username, req.Profile); err != nil {
		return err
	}

	metrics.ProfileSavesTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) changePassword(c echo.Context, body []byte) error {
	var req changePasswordRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.ChangePassword(c.Request().Context(), req.Username, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Пароль успешно изменен"})
}

func (h *AuthHandler) setAdmin(c echo.Context, body []byte) error {
	var req setAdminRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SetAdmin(c.Request().Context(), req.AdminUsername, req.TargetUsername, req.MakeAdmin); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) getAllUsers(c echo.Context, body []byte) error {
	var req getAllUsersRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	users, err := h.service.ListUsers(c.Request().Context(), req.AdminUsername)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.UserSummary{}
	}
	return c.JSON(http.StatusOK, map[string][]domain.UserSummary{"users": users})
}

func (h *AuthHandler) adminSetPassword(c echo.Context, body []byte) error {
	var req adminSetPasswordRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.AdminSetPassword(c.Request().Context(), req.AdminUsername, req.TargetUsername, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Пароль успешно изменен"})
}

func (h *AuthHandler) resetPassword(c echo.Context, body []byte) error {
	var req resetPasswordRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.PasswordResetsTotal.Inc()
	// Uniform response: the caller cannot tell whether the email exists.
	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: "Если email найден, письмо с новым паролем отправлено",
	})
}
