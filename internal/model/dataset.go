package model

import (
	"encoding/json"
	"time"
)

// Package model contains domain models/data structures shared across layers.

// Dataset is a named dashboard document as stored in PostgreSQL.
// Document is opaque JSON stored in a JSON (not JSONB) column, so its text
// survives the round trip and is returned to clients byte for byte.
type Dataset struct {
	Name      string          `json:"name"`
	Document  json.RawMessage `json:"document"`
	UpdatedAt time.Time       `json:"updated_at"`
}
