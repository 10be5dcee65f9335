package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error)
	GetByID(ctx context.Context, id uint64) (domain.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID uint64) ([]domain.Project, error)
	Update(ctx context.Context, id uint64, in domain.UpdateProjectInput) (domain.Project, error)
	// Delete takes the project's sections, tasks, custom fields and all rows
	// hanging off them down in one transaction.
	Delete(ctx context.Context, id uint64) error
}

type ProjectService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateProjectInput) (domain.Project, error)
	Get(ctx context.Context, p domain.Principal, id uint64) (domain.Project, error)
	ListByWorkspace(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.Project, error)
	Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateProjectInput) (domain.Project, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
}
