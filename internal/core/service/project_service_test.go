package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[int64]*domain.SceneProject
	nextID   int64
	deletes  int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[int64]*domain.SceneProject)}
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.SceneProjectSummary, error) {
	out := make([]domain.SceneProjectSummary, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, domain.SceneProjectSummary{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt})
	}
	return out, nil
}

func (r *stubProjectRepo) Get(_ context.Context, id int64) (*domain.SceneProject, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (r *stubProjectRepo) Create(_ context.Context, name string, data json.RawMessage) (*domain.SceneProject, error) {
	r.nextID++
	p := &domain.SceneProject{ID: r.nextID, Name: name, Data: data, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	r.projects[p.ID] = p
	return p, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id int64, in ports.ProjectUpdateInput) (*domain.SceneProject, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Data != nil {
		p.Data = in.Data
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id int64) error {
	delete(r.projects, id)
	r.deletes++
	return nil
}

func TestProjectService_Create_Defaults(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo())

	p, err := svc.Create(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.Name != domain.DefaultProjectName {
		t.Fatalf("expected default name, got %q", p.Name)
	}
	if string(p.Data) != `{}` {
		t.Fatalf("expected empty object payload, got %s", p.Data)
	}
}

func TestProjectService_Update_Validation(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo)
	ctx := context.Background()

	if _, err := svc.Update(ctx, 1, ports.ProjectUpdateInput{}); err != domain.ErrNoUpdates {
		t.Fatalf("expected ErrNoUpdates, got %v", err)
	}

	name := "renamed"
	if _, err := svc.Update(ctx, 42, ports.ProjectUpdateInput{Name: &name}); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	p, err := svc.Create(ctx, "scene", json.RawMessage(`{"nodes":[]}`))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	updated, err := svc.Update(ctx, p.ID, ports.ProjectUpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "renamed" {
		t.Fatalf("expected renamed, got %q", updated.Name)
	}
	if string(updated.Data) != `{"nodes":[]}` {
		t.Fatalf("payload must be untouched by a name-only update, got %s", updated.Data)
	}
}

func TestProjectService_Delete_Idempotent(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo)
	ctx := context.Background()

	if err := svc.Delete(ctx, 999); err != nil {
		t.Fatalf("deleting a missing project must succeed, got %v", err)
	}

	p, _ := svc.Create(ctx, "scene", nil)
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("second delete must also succeed, got %v", err)
	}
}
