package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("template not found")
	ErrAppIDTaken = errors.New("app id already exists")
)

// Template is an admin-defined website blueprint. AppID points at the
// hosting platform app serving the template; it is unique across templates.
// Structure is the opaque content payload cloned into new websites.
type Template struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	AppID       string          `json:"amplifyAppId"`
	Description string          `json:"description"`
	Structure   json.RawMessage `json:"structure"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
