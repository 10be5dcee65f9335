package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type TagRepository interface {
	// Create maps a duplicate (name, workspace) pair to ErrTagNameTaken.
	Create(ctx context.Context, in domain.CreateTagInput) (domain.Tag, error)
	GetByID(ctx context.Context, id uint64) (domain.Tag, error)
	ListByWorkspace(ctx context.Context, workspaceID uint64) ([]domain.Tag, error)
	// Update maps a rename onto the same uniqueness rule as Create.
	Update(ctx context.Context, id uint64, in domain.UpdateTagInput) (domain.Tag, error)
	// Delete removes the tag and its task links.
	Delete(ctx context.Context, id uint64) error
	// Attach and Detach are idempotent; repeating either changes nothing.
	Attach(ctx context.Context, taskID, tagID uint64) error
	Detach(ctx context.Context, taskID, tagID uint64) error
	ListForTask(ctx context.Context, taskID uint64) ([]domain.Tag, error)
}

type TagService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateTagInput) (domain.Tag, error)
	ListByWorkspace(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.Tag, error)
	Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateTagInput) (domain.Tag, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
	Attach(ctx context.Context, p domain.Principal, taskID, tagID uint64) error
	Detach(ctx context.Context, p domain.Principal, taskID, tagID uint64) error
	ListForTask(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.Tag, error)
}
