package ports

import (
	"context"
	"encoding/json"
)

// NovelRepository persists the single-slot novel document.
type NovelRepository interface {
	// Latest returns the most recently updated document.
	Latest(ctx context.Context) (json.RawMessage, error)
	// Replace clears the table and inserts doc as the sole row, atomically.
	Replace(ctx context.Context, doc json.RawMessage) error
}

// NovelService exposes the reader/editor operations over the novel document.
type NovelService interface {
	Get(ctx context.Context) (json.RawMessage, error)
	Replace(ctx context.Context, doc json.RawMessage, isAdmin bool) error
}
