package dto

type ProjectItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	WorkspaceID uint64  `json:"workspace_id"`
	TeamID      *uint64 `json:"team_id,omitempty"`
	OwnerID     uint64  `json:"owner_id"`
	IsPublic    bool    `json:"is_public"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	WorkspaceID uint64  `json:"workspace_id" binding:"required,gt=0"`
	TeamID      *uint64 `json:"team_id" binding:"omitempty,gt=0"`
	IsPublic    *bool   `json:"is_public"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	TeamID      *uint64 `json:"team_id" binding:"omitempty,gt=0"`
	IsPublic    *bool   `json:"is_public"`
}
