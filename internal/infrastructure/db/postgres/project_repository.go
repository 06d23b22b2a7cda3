package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// ProjectRepository persists scene-editor projects.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.SceneProjectSummary, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM scene_projects
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	projects := []domain.SceneProjectSummary{}
	for rows.Next() {
		var p domain.SceneProjectSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.SceneProject, error) {
	query := `
		SELECT id, name, data, created_at, updated_at
		FROM scene_projects
		WHERE id = $1`

	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *ProjectRepository) Create(ctx context.Context, name string, data json.RawMessage) (*domain.SceneProject, error) {
	query := `
		INSERT INTO scene_projects (name, data)
		VALUES ($1, $2)
		RETURNING id, name, data, created_at, updated_at`

	return r.scanProject(r.db.QueryRowContext(ctx, query, name, []byte(data)))
}

// Update applies only the supplied fields, always refreshing updated_at.
func (r *ProjectRepository) Update(ctx context.Context, id int64, in ports.ProjectUpdateInput) (*domain.SceneProject, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if in.Name != nil {
		args = append(args, *in.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if in.Data != nil {
		args = append(args, []byte(in.Data))
		sets = append(sets, fmt.Sprintf("data = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE scene_projects
		SET %s
		WHERE id = $%d
		RETURNING id, name, data, created_at, updated_at`,
		strings.Join(sets, ", "), len(args))

	return r.scanProject(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scene_projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *ProjectRepository) scanProject(row *sql.Row) (*domain.SceneProject, error) {
	p := &domain.SceneProject{}
	var data []byte
	err := row.Scan(&p.ID, &p.Name, &data, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.Data = data
	return p, nil
}
