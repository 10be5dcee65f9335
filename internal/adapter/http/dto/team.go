package dto

type TeamItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	WorkspaceID uint64  `json:"workspace_id"`
	CreatedAt   string  `json:"created_at"`
}

type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	WorkspaceID uint64  `json:"workspace_id" binding:"required,gt=0"`
}

type AddTeamMemberRequest struct {
	UserID uint64 `json:"user_id" binding:"required,gt=0"`
}
