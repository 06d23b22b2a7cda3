package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

// stubNovelRepo emulates the single-slot register: Replace overwrites the
// only row, Latest returns it or reports "empty".
type stubNovelRepo struct {
	doc      json.RawMessage
	replaces int
}

func (r *stubNovelRepo) Latest(_ context.Context) (json.RawMessage, error) {
	if r.doc == nil {
		return nil, domain.ErrNovelNotFound
	}
	return r.doc, nil
}

func (r *stubNovelRepo) Replace(_ context.Context, doc json.RawMessage) error {
	r.doc = append(json.RawMessage(nil), doc...)
	r.replaces++
	return nil
}

func TestNovelService_Get_Empty(t *testing.T) {
	svc := NewNovelService(&stubNovelRepo{})

	if _, err := svc.Get(context.Background()); err != domain.ErrNovelNotFound {
		t.Fatalf("expected ErrNovelNotFound, got %v", err)
	}
}

func TestNovelService_Replace_RequiresAdmin(t *testing.T) {
	repo := &stubNovelRepo{}
	svc := NewNovelService(repo)

	err := svc.Replace(context.Background(), json.RawMessage(`{"v":1}`), false)
	if err != domain.ErrAdminRequired {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
	if repo.replaces != 0 {
		t.Fatalf("non-admin replace must not touch the store")
	}
}

func TestNovelService_Replace_LastWriteWins(t *testing.T) {
	repo := &stubNovelRepo{}
	svc := NewNovelService(repo)
	ctx := context.Background()

	for i, doc := range []string{`{"v":1}`, `{"v":2}`, `{"v":3}`} {
		if err := svc.Replace(ctx, json.RawMessage(doc), true); err != nil {
			t.Fatalf("replace %d failed: %v", i, err)
		}
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"v":3}` {
		t.Fatalf("expected latest document, got %s", got)
	}
	if repo.replaces != 3 {
		t.Fatalf("expected 3 replacements, got %d", repo.replaces)
	}
}
