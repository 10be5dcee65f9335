package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type WorkspaceService struct {
	workspaceRepository ports.WorkspaceRepository
	userRepository      ports.UserRepository
}

func NewWorkspaceService(workspaceRepository ports.WorkspaceRepository, userRepository ports.UserRepository) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepository: workspaceRepository,
		userRepository:      userRepository,
	}
}

func (s *WorkspaceService) Create(ctx context.Context, p domain.Principal, in domain.CreateWorkspaceInput) (domain.Workspace, error) {
	in.OwnerID = p.UserID
	return s.workspaceRepository.Create(ctx, in)
}

func (s *WorkspaceService) Get(ctx context.Context, p domain.Principal, id uint64) (domain.Workspace, error) {
	workspace, err := s.workspaceRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Workspace{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, id, p.UserID); err != nil {
		return domain.Workspace{}, err
	}
	return workspace, nil
}

func (s *WorkspaceService) List(ctx context.Context, p domain.Principal) ([]domain.Workspace, error) {
	return s.workspaceRepository.ListByUser(ctx, p.UserID)
}

// Update and Delete are reserved for the owner; plain members get Forbidden.
func (s *WorkspaceService) Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateWorkspaceInput) (domain.Workspace, error) {
	workspace, err := s.workspaceRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Workspace{}, err
	}
	if workspace.OwnerID != p.UserID {
		return domain.Workspace{}, domain.ErrForbidden
	}
	return s.workspaceRepository.Update(ctx, id, in)
}

func (s *WorkspaceService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	workspace, err := s.workspaceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if workspace.OwnerID != p.UserID {
		return domain.ErrForbidden
	}
	return s.workspaceRepository.Delete(ctx, id)
}

// AddMember enrolls an existing account by email. Adding someone who is
// already a member changes nothing.
func (s *WorkspaceService) AddMember(ctx context.Context, p domain.Principal, workspaceID uint64, email string) (domain.User, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, workspaceID); err != nil {
		return domain.User{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, workspaceID, p.UserID); err != nil {
		return domain.User{}, err
	}

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.workspaceRepository.AddMember(ctx, workspaceID, user.ID); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *WorkspaceService) ListMembers(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.User, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, workspaceID, p.UserID); err != nil {
		return nil, err
	}
	return s.workspaceRepository.ListMembers(ctx, workspaceID)
}

var _ ports.WorkspaceService = (*WorkspaceService)(nil)
