package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kotatsu-vn/novel-backend/internal/api/metrics"
	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// UploadHandler serves base64 image uploads.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

type uploadRequest struct {
	FileData    string `json:"fileData" validate:"required"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/upload — decodes and stores a single image.
//
// @Summary      Upload an image
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        body  body      uploadRequest  true  "Base64 image payload"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrNoFile
	}

	url, err := h.service.Upload(c.Request().Context(), ports.UploadInput{
		FileData:    req.FileData,
		FileName:    req.FileName,
		ContentType: req.ContentType,
	})
	if err != nil {
		if err != domain.ErrNoFile && err != domain.ErrInvalidFileData {
			metrics.UploadsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	metrics.UploadSizeBytes.Observe(float64(len(req.FileData) * 3 / 4))
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}
