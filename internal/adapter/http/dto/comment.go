package dto

type CommentItem struct {
	ID        uint64 `json:"id"`
	Text      string `json:"text"`
	TaskID    uint64 `json:"task_id"`
	AuthorID  uint64 `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=65535"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required,max=65535"`
}
