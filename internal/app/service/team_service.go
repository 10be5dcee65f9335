package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type TeamService struct {
	teamRepository      ports.TeamRepository
	workspaceRepository ports.WorkspaceRepository
	userRepository      ports.UserRepository
}

func NewTeamService(teamRepository ports.TeamRepository, workspaceRepository ports.WorkspaceRepository, userRepository ports.UserRepository) *TeamService {
	return &TeamService{
		teamRepository:      teamRepository,
		workspaceRepository: workspaceRepository,
		userRepository:      userRepository,
	}
}

func (s *TeamService) Create(ctx context.Context, p domain.Principal, in domain.CreateTeamInput) (domain.Team, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, in.WorkspaceID); err != nil {
		return domain.Team{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, in.WorkspaceID, p.UserID); err != nil {
		return domain.Team{}, err
	}
	return s.teamRepository.Create(ctx, in)
}

func (s *TeamService) Get(ctx context.Context, p domain.Principal, id uint64) (domain.Team, error) {
	team, err := s.teamRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, team.WorkspaceID, p.UserID); err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

func (s *TeamService) ListByWorkspace(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.Team, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, workspaceID, p.UserID); err != nil {
		return nil, err
	}
	return s.teamRepository.ListByWorkspace(ctx, workspaceID)
}

func (s *TeamService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	team, err := s.teamRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	workspace, err := s.workspaceRepository.GetByID(ctx, team.WorkspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID != p.UserID {
		return domain.ErrForbidden
	}
	return s.teamRepository.Delete(ctx, id)
}

// AddMember only accepts users who already belong to the team's workspace;
// a team cannot reach outside it.
func (s *TeamService) AddMember(ctx context.Context, p domain.Principal, teamID, userID uint64) error {
	team, err := s.teamRepository.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, team.WorkspaceID, p.UserID); err != nil {
		return err
	}

	if _, err := s.userRepository.GetByID(ctx, userID); err != nil {
		return err
	}

	isMember, err := s.workspaceRepository.IsMember(ctx, team.WorkspaceID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrUserNotInWorkspace
	}

	return s.teamRepository.AddMember(ctx, teamID, userID)
}

// RemoveMember drops a team membership. The workspace membership stays; a
// user leaving a team keeps access to everything workspace scoped.
func (s *TeamService) RemoveMember(ctx context.Context, p domain.Principal, teamID, userID uint64) error {
	team, err := s.teamRepository.GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, team.WorkspaceID, p.UserID); err != nil {
		return err
	}
	return s.teamRepository.RemoveMember(ctx, teamID, userID)
}

func (s *TeamService) ListMembers(ctx context.Context, p domain.Principal, teamID uint64) ([]domain.User, error) {
	team, err := s.teamRepository.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, team.WorkspaceID, p.UserID); err != nil {
		return nil, err
	}
	return s.teamRepository.ListMembers(ctx, teamID)
}

var _ ports.TeamService = (*TeamService)(nil)
