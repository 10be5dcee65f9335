package dto

type TagItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Color       *string `json:"color,omitempty"`
	WorkspaceID uint64  `json:"workspace_id"`
	CreatedAt   string  `json:"created_at"`
}

type CreateTagRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Color       *string `json:"color" binding:"omitempty,max=32"`
	WorkspaceID uint64  `json:"workspace_id" binding:"required,gt=0"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}
