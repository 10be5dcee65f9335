package dto

type WorkspaceItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	OwnerID   uint64 `json:"owner_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateWorkspaceRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

type AddWorkspaceMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}
