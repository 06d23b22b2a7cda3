package ports

import (
	"context"
	"encoding/json"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

// ProjectUpdateInput carries a partial update: nil fields are left untouched.
type ProjectUpdateInput struct {
	Name *string
	Data json.RawMessage
}

// ProjectRepository persists scene-editor projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.SceneProjectSummary, error)
	Get(ctx context.Context, id int64) (*domain.SceneProject, error)
	Create(ctx context.Context, name string, data json.RawMessage) (*domain.SceneProject, error)
	Update(ctx context.Context, id int64, in ProjectUpdateInput) (*domain.SceneProject, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectService exposes scene-project CRUD.
type ProjectService interface {
	List(ctx context.Context) ([]domain.SceneProjectSummary, error)
	Get(ctx context.Context, id int64) (*domain.SceneProject, error)
	Create(ctx context.Context, name string, data json.RawMessage) (*domain.SceneProject, error)
	Update(ctx context.Context, id int64, in ProjectUpdateInput) (*domain.SceneProject, error)
	Delete(ctx context.Context, id int64) error
}
