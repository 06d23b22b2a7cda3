package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

type stubNovelService struct {
	doc      json.RawMessage
	replaced json.RawMessage
}

func (s *stubNovelService) Get(context.Context) (json.RawMessage, error) {
	if s.doc == nil {
		return nil, domain.ErrNovelNotFound
	}
	return s.doc, nil
}

func (s *stubNovelService) Replace(_ context.Context, doc json.RawMessage, isAdmin bool) error {
	if !isAdmin {
		return domain.ErrAdminRequired
	}
	s.replaced = doc
	return nil
}

func TestNovelHandler_Get(t *testing.T) {
	doc := `{"episodes":[{"id":"ep1"}]}`
	h := NewNovelHandler(&stubNovelService{doc: json.RawMessage(doc)})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/novel", nil)
	rec := httptest.NewRecorder()

	if err := h.Get(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != doc {
		t.Fatalf("document altered in transport:\n got %s\nwant %s", rec.Body.String(), doc)
	}
}

func TestNovelHandler_Replace_RequiresAdminQuery(t *testing.T) {
	stub := &stubNovelService{}
	h := NewNovelHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/novel", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	// The admin gate fires before the body is read, so a bad payload from
	// a non-admin still gets 403.
	if err := h.Replace(e.NewContext(req, rec)); !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
	if stub.replaced != nil {
		t.Fatal("document must not be stored without the admin flag")
	}
}

func TestNovelHandler_Replace(t *testing.T) {
	stub := &stubNovelService{}
	h := NewNovelHandler(stub)

	doc := `{"episodes":[]}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/novel?admin=true", strings.NewReader(doc))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Replace(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if string(stub.replaced) != doc {
		t.Fatalf("stored document mismatch: %s", stub.replaced)
	}
}

func TestNovelHandler_Replace_InvalidJSON(t *testing.T) {
	h := NewNovelHandler(&stubNovelService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/novel?admin=true", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	err := h.Replace(e.NewContext(req, rec))
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid document, got %v", err)
	}
}
