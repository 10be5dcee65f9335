package domain

import "time"

type Comment struct {
	ID        uint64
	Text      string
	TaskID    uint64
	AuthorID  uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateCommentInput struct {
	Text     string
	TaskID   uint64
	AuthorID uint64
}
