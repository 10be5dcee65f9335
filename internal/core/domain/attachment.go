package domain

import "time"

// Attachment hangs off exactly one of TaskID or CommentID, never both and
// never neither. Reference is an opaque URL or storage key; no bytes are
// stored here.
type Attachment struct {
	ID         uint64
	Filename   string
	Reference  string
	TaskID     *uint64
	CommentID  *uint64
	UploaderID uint64
	CreatedAt  time.Time
}

type CreateAttachmentInput struct {
	Filename   string
	Reference  string
	TaskID     *uint64
	CommentID  *uint64
	UploaderID uint64
}

// Validate enforces the exactly-one-parent rule before anything touches
// storage.
func (in CreateAttachmentInput) Validate() error {
	if (in.TaskID == nil) == (in.CommentID == nil) {
		return ErrAttachmentTarget
	}
	return nil
}
