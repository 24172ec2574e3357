package domain

import "time"

// Workspace is a tenant boundary. Workspaces are created implicitly by the
// first registration naming them and are never deleted.
type Workspace struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
