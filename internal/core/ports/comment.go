package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, in domain.CreateCommentInput) (domain.Comment, error)
	GetByID(ctx context.Context, id uint64) (domain.Comment, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	Update(ctx context.Context, id uint64, text string) (domain.Comment, error)
	// Delete removes the comment together with its attachments.
	Delete(ctx context.Context, id uint64) error
}

type CommentService interface {
	Create(ctx context.Context, p domain.Principal, taskID uint64, text string) (domain.Comment, error)
	ListByTask(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.Comment, error)
	Update(ctx context.Context, p domain.Principal, id uint64, text string) (domain.Comment, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
}
