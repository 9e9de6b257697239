package core

import "time"

// WorkspaceState is the daemon's record of a registered workspace. IDs and
// paths are stored verbatim; the registry performs no validation on either.
type WorkspaceState struct {
	ID             string    `json:"id"`
	Path           string    `json:"path"`
	RegisteredAt   time.Time `json:"registered_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
