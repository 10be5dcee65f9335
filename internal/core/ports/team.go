package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, in domain.CreateTeamInput) (domain.Team, error)
	GetByID(ctx context.Context, id uint64) (domain.Team, error)
	ListByWorkspace(ctx context.Context, workspaceID uint64) ([]domain.Team, error)
	// Delete removes the team and its memberships and detaches its projects.
	Delete(ctx context.Context, id uint64) error
	AddMember(ctx context.Context, teamID, userID uint64) error
	// RemoveMember is idempotent; removing someone who is not on the team
	// is a no-op.
	RemoveMember(ctx context.Context, teamID, userID uint64) error
	ListMembers(ctx context.Context, teamID uint64) ([]domain.User, error)
}

type TeamService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateTeamInput) (domain.Team, error)
	Get(ctx context.Context, p domain.Principal, id uint64) (domain.Team, error)
	ListByWorkspace(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.Team, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
	AddMember(ctx context.Context, p domain.Principal, teamID, userID uint64) error
	RemoveMember(ctx context.Context, p domain.Principal, teamID, userID uint64) error
	ListMembers(ctx context.Context, p domain.Principal, teamID uint64) ([]domain.User, error)
}
