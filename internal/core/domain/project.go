package domain

import (
	"encoding/json"
	"time"
)

// DefaultProjectName is used when a create request carries no name.
const DefaultProjectName = "Новый проект"

// SceneProject is a named scene-editor document. Names are not unique;
// rows are independent and addressed by id only.
type SceneProject struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SceneProjectSummary is the listing row: the payload is omitted because
// scene documents can be large.
type SceneProjectSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
