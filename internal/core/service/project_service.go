package service

import (
	"context"
	"encoding/json"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// ProjectService implements scene-project CRUD on top of the repository.
type ProjectService struct {
	repo ports.ProjectRepository
}

func NewProjectService(repo ports.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.SceneProjectSummary, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.SceneProject, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, name string, data json.RawMessage) (*domain.SceneProject, error) {
	if name == "" {
		name = domain.DefaultProjectName
	}
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}
	return s.repo.Create(ctx, name, data)
}

func (s *ProjectService) Update(ctx context.Context, id int64, in ports.ProjectUpdateInput) (*domain.SceneProject, error) {
	if in.Name == nil && in.Data == nil {
		return nil, domain.ErrNoUpdates
	}
	return s.repo.Update(ctx, id, in)
}

// Delete is idempotent: removing an id that no longer exists is a success.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
