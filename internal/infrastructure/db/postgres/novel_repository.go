package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

// NovelRepository persists the single-slot novel document.
type NovelRepository struct {
	db *sql.DB
}

func NewNovelRepository(db *sql.DB) *NovelRepository {
	return &NovelRepository{db: db}
}

func (r *NovelRepository) Latest(ctx context.Context) (json.RawMessage, error) {
	query := `SELECT data FROM novels ORDER BY updated_at DESC LIMIT 1`

	var data []byte
	if err := r.db.QueryRowContext(ctx, query).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNovelNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return data, nil
}

// Replace clears the table and inserts doc inside one transaction, so a
// concurrent reader never observes an empty slot or two rows.
func (r *NovelRepository) Replace(ctx context.Context, doc json.RawMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM novels`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO novels (data, updated_at) VALUES ($1, NOW())`, []byte(doc)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
