package dto

type SectionItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	ProjectID uint64 `json:"project_id"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
}

type CreateSectionRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	ProjectID uint64 `json:"project_id" binding:"required,gt=0"`
	Position  *int   `json:"position" binding:"omitempty,gte=0"`
}

type UpdateSectionRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Position *int    `json:"position" binding:"omitempty,gte=0"`
}
