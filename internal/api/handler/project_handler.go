package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// ProjectHandler serves scene-editor project CRUD.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Name *string         `json:"name"`
	Data json.RawMessage `json:"data"`
}

// dataOrNil treats an explicit JSON null the same as an absent data field;
// it must never reach the NOT NULL column.
func (r projectRequest) dataOrNil() json.RawMessage {
	if bytes.Equal(r.Data, []byte("null")) {
		return nil
	}
	return r.Data
}

// List handles GET /api/projects — id/name/timestamps only, newest first.
//
// @Summary      List scene projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.SceneProjectSummary
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id — full record including payload.
//
// @Summary      Get a scene project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  domain.SceneProject
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseProjectID(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /api/projects.
//
// @Summary      Create a scene project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      projectRequest  true  "Name and payload"
// @Success      201   {object}  domain.SceneProject
// @Failure      400   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}
	project, err := h.service.Create(c.Request().Context(), name, req.dataOrNil())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /api/projects/:id — partial update of supplied fields.
//
// @Summary      Update a scene project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Project id"
// @Param        body  body      projectRequest  true  "Fields to update"
// @Success      200   {object}  domain.SceneProject
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseProjectID(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.service.Update(c.Request().Context(), id, ports.ProjectUpdateInput{
		Name: req.Name,
		Data: req.dataOrNil(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id — idempotent.
//
// @Summary      Delete a scene project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  successResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseProjectID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func parseProjectID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Project ID required")
	}
	return id, nil
}
