package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kotatsu-vn/novel-backend/internal/api/metrics"
	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// NovelHandler serves the single canonical novel document.
type NovelHandler struct {
	service ports.NovelService
}

func NewNovelHandler(service ports.NovelService) *NovelHandler {
	return &NovelHandler{service: service}
}

// Get handles GET /api/novel — returns the current novel document.
//
// @Summary      Get the novel document
// @Tags         novel
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  errorResponse
// @Router       /api/novel [get]
func (h *NovelHandler) Get(c echo.Context) error {
	doc, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, doc)
}

// Replace handles PUT /api/novel?admin=true — replaces the document wholesale.
//
// @Summary      Replace the novel document
// @Tags         novel
// @Accept       json
// @Produce      json
// @Param        admin  query     string          true  "Must be \"true\""
// @Param        body   body      map[string]any  true  "Novel document"
// @Success      200    {object}  successResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/novel [put]
func (h *NovelHandler) Replace(c echo.Context) error {
	isAdmin := c.QueryParam("admin") == "true"
	if !isAdmin {
		return domain.ErrAdminRequired
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Replace(c.Request().Context(), body, isAdmin); err != nil {
		return err
	}

	metrics.NovelReplacementsTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
