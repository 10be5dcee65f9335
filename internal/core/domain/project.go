package domain

import "time"

type Project struct {
	ID          uint64
	Name        string
	Description *string
	WorkspaceID uint64
	TeamID      *uint64
	OwnerID     uint64
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProjectInput struct {
	Name        string
	Description *string
	WorkspaceID uint64
	TeamID      *uint64
	OwnerID     uint64
	IsPublic    bool
}

// UpdateProjectInput carries PATCH semantics: a nil pointer with its Set flag
// raised means "clear the field", a nil pointer without the flag means "leave
// it alone".
type UpdateProjectInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	TeamID         *uint64
	TeamIDSet      bool
	IsPublic       *bool
}
