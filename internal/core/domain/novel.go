package domain

import (
	"encoding/json"
	"time"
)

// Novel is the single canonical script/content document consumed by the
// front-end reader. The store keeps exactly one row: every replacement
// clears the table first, so there is no history.
type Novel struct {
	ID        int64           `json:"id"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}
