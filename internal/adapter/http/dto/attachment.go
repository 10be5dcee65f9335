package dto

type AttachmentItem struct {
	ID         uint64  `json:"id"`
	Filename   string  `json:"filename"`
	Reference  string  `json:"reference"`
	TaskID     *uint64 `json:"task_id,omitempty"`
	CommentID  *uint64 `json:"comment_id,omitempty"`
	UploaderID uint64  `json:"uploader_id"`
	CreatedAt  string  `json:"created_at"`
}

// CreateAttachmentRequest carries only the file metadata; the owning task or
// comment comes from the URL, which keeps the exactly-one-parent rule out of
// the payload.
type CreateAttachmentRequest struct {
	Filename  string `json:"filename" binding:"required,max=255"`
	Reference string `json:"reference" binding:"required,max=2048"`
}
