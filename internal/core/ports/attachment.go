package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type AttachmentRepository interface {
	Create(ctx context.Context, in domain.CreateAttachmentInput) (domain.Attachment, error)
	GetByID(ctx context.Context, id uint64) (domain.Attachment, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Attachment, error)
	ListByComment(ctx context.Context, commentID uint64) ([]domain.Attachment, error)
	Delete(ctx context.Context, id uint64) error
}

type AttachmentService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateAttachmentInput) (domain.Attachment, error)
	ListByTask(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.Attachment, error)
	ListByComment(ctx context.Context, p domain.Principal, commentID uint64) ([]domain.Attachment, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
}
