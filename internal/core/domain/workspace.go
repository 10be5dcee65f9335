package domain

import "time"

// Workspace is the root of the containment hierarchy. Every team, project,
// tag and (transitively) task hangs off exactly one workspace.
type Workspace struct {
	ID        uint64
	Name      string
	OwnerID   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateWorkspaceInput struct {
	Name    string
	OwnerID uint64
}

type UpdateWorkspaceInput struct {
	Name *string
}
