package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type WorkspaceRepository interface {
	// Create inserts the workspace and enrolls the owner as a member in the
	// same transaction.
	Create(ctx context.Context, in domain.CreateWorkspaceInput) (domain.Workspace, error)
	GetByID(ctx context.Context, id uint64) (domain.Workspace, error)
	ListByUser(ctx context.Context, userID uint64) ([]domain.Workspace, error)
	Update(ctx context.Context, id uint64, in domain.UpdateWorkspaceInput) (domain.Workspace, error)
	// Delete removes the workspace and everything under it: teams, projects,
	// sections, tasks, tags, fields, values, comments, attachments,
	// memberships. One transaction, all or nothing.
	Delete(ctx context.Context, id uint64) error
	AddMember(ctx context.Context, workspaceID, userID uint64) error
	ListMembers(ctx context.Context, workspaceID uint64) ([]domain.User, error)
	IsMember(ctx context.Context, workspaceID, userID uint64) (bool, error)
}

type WorkspaceService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateWorkspaceInput) (domain.Workspace, error)
	Get(ctx context.Context, p domain.Principal, id uint64) (domain.Workspace, error)
	List(ctx context.Context, p domain.Principal) ([]domain.Workspace, error)
	Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateWorkspaceInput) (domain.Workspace, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
	AddMember(ctx context.Context, p domain.Principal, workspaceID uint64, email string) (domain.User, error)
	ListMembers(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.User, error)
}
