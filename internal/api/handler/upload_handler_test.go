package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

type stubUploadService struct {
	uploadFn func(ctx context.Context, in ports.UploadInput) (string, error)
}

func (s *stubUploadService) Upload(ctx context.Context, in ports.UploadInput) (string, error) {
	return s.uploadFn(ctx, in)
}

func TestUploadHandler_Success(t *testing.T) {
	stub := &stubUploadService{
		uploadFn: func(_ context.Context, in ports.UploadInput) (string, error) {
			if in.FileName != "bg.png" {
				t.Fatalf("unexpected file name %q", in.FileName)
			}
			return "https://cdn.poehali.dev/projects/AKIA/bucket/images/abc.png", nil
		},
	}
	h := NewUploadHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/upload",
		strings.NewReader(`{"fileData":"aGVsbG8=","fileName":"bg.png"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Upload(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"url":"https://cdn.poehali.dev/projects/AKIA/bucket/images/abc.png"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUploadHandler_MissingFile(t *testing.T) {
	stub := &stubUploadService{
		uploadFn: func(context.Context, ports.UploadInput) (string, error) {
			t.Fatal("service must not be called when fileData is missing")
			return "", nil
		},
	}
	h := NewUploadHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Upload(e.NewContext(req, rec)); !errors.Is(err, domain.ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}
