package domain

import "time"

// Tag names are unique per workspace, not globally.
type Tag struct {
	ID          uint64
	Name        string
	Color       *string
	WorkspaceID uint64
	CreatedAt   time.Time
}

type CreateTagInput struct {
	Name        string
	Color       *string
	WorkspaceID uint64
}

// UpdateTagInput renames and recolors; a raised ColorSet with a nil Color
// clears the color. The workspace is fixed at creation.
type UpdateTagInput struct {
	Name     *string
	Color    *string
	ColorSet bool
}
