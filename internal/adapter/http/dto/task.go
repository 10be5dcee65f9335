package dto

type TaskItem struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	ProjectID    uint64  `json:"project_id"`
	SectionID    *uint64 `json:"section_id,omitempty"`
	ParentTaskID *uint64 `json:"parent_task_id,omitempty"`
	AssigneeID   *uint64 `json:"assignee_id,omitempty"`
	CreatorID    uint64  `json:"creator_id"`
	DueDate      *string `json:"due_date,omitempty"`
	Completed    bool    `json:"completed"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	Position     int     `json:"position"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type TaskPageResponse struct {
	Tasks  []TaskItem `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type CreateTaskRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=65535"`
	ProjectID    uint64  `json:"project_id" binding:"required,gt=0"`
	SectionID    *uint64 `json:"section_id" binding:"omitempty,gt=0"`
	ParentTaskID *uint64 `json:"parent_task_id" binding:"omitempty,gt=0"`
	AssigneeID   *uint64 `json:"assignee_id" binding:"omitempty,gt=0"`
	DueDate      *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Position     *int    `json:"position" binding:"omitempty,gte=0"`
}

type UpdateTaskRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=65535"`
	SectionID    *uint64 `json:"section_id" binding:"omitempty,gt=0"`
	ParentTaskID *uint64 `json:"parent_task_id" binding:"omitempty,gt=0"`
	AssigneeID   *uint64 `json:"assignee_id" binding:"omitempty,gt=0"`
	DueDate      *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Completed    *bool   `json:"completed"`
	Position     *int    `json:"position" binding:"omitempty,gte=0"`
}
