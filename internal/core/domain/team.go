package domain

import "time"

type Team struct {
	ID          uint64
	Name        string
	Description *string
	WorkspaceID uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTeamInput struct {
	Name        string
	Description *string
	WorkspaceID uint64
}
