package service

import (
	"context"
	"encoding/json"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// NovelService serves the single canonical novel document.
type NovelService struct {
	repo ports.NovelRepository
}

func NewNovelService(repo ports.NovelRepository) *NovelService {
	return &NovelService{repo: repo}
}

func (s *NovelService) Get(ctx context.Context) (json.RawMessage, error) {
	return s.repo.Latest(ctx)
}

// Replace installs doc as the only novel row. The table is treated as a
// single-slot register: no history is kept.
func (s *NovelService) Replace(ctx context.Context, doc json.RawMessage, isAdmin bool) error {
	if !isAdmin {
		return domain.ErrAdminRequired
	}
	return s.repo.Replace(ctx, doc)
}
