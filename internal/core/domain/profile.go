package domain

import (
	"bytes"
	"encoding/json"
)

// ProfileSchemaVersion is the current profile document version. The schema
// is additive-only: new fields may appear, existing ones never change
// meaning. Clients own the document; the server stores it verbatim.
const ProfileSchemaVersion = 1

// Profile is the per-user reading-progress document. Field names are
// camelCase because the document is consumed by the front-end as-is.
type Profile struct {
	SchemaVersion         int            `json:"schemaVersion"`
	Name                  string         `json:"name"`
	CreatedAt             string         `json:"createdAt"`
	CompletedEpisodes     []string       `json:"completedEpisodes"`
	Bookmarks             []string       `json:"bookmarks"`
	CollectedItems        []string       `json:"collectedItems"`
	MetCharacters         []string       `json:"metCharacters"`
	CurrentEpisodeID      string         `json:"currentEpisodeId"`
	CurrentParagraphIndex int            `json:"currentParagraphIndex"`
	ReadParagraphs        []string       `json:"readParagraphs"`
	UsedChoices           []string       `json:"usedChoices"`
	ActivePaths           []string       `json:"activePaths"`
	PathChoices           map[string]string `json:"pathChoices"`
	TotalReadTime         int            `json:"totalReadTime,omitempty"`
	Achievements          []string       `json:"achievements,omitempty"`
}

// NewDefaultProfile returns the profile a fresh registration starts with.
// The reader opens on the first episode.
func NewDefaultProfile(name, createdAt string) Profile {
	return Profile{
		SchemaVersion:     ProfileSchemaVersion,
		Name:              name,
		CreatedAt:         createdAt,
		CompletedEpisodes: []string{},
		Bookmarks:         []string{},
		CollectedItems:    []string{},
		MetCharacters:     []string{},
		CurrentEpisodeID:  "ep1",
		ReadParagraphs:    []string{},
		UsedChoices:       []string{},
		ActivePaths:       []string{},
		PathChoices:       map[string]string{},
	}
}

// ValidProfileDocument reports whether raw is a JSON object. That is the
// only shape constraint the server enforces; the contents belong to the
// client.
func ValidProfileDocument(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(raw)
}
