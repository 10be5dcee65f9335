package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type ProjectService struct {
	projectRepository   ports.ProjectRepository
	workspaceRepository ports.WorkspaceRepository
	teamRepository      ports.TeamRepository
}

func NewProjectService(projectRepository ports.ProjectRepository, workspaceRepository ports.WorkspaceRepository, teamRepository ports.TeamRepository) *ProjectService {
	return &ProjectService{
		projectRepository:   projectRepository,
		workspaceRepository: workspaceRepository,
		teamRepository:      teamRepository,
	}
}

func (s *ProjectService) Create(ctx context.Context, p domain.Principal, in domain.CreateProjectInput) (domain.Project, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, in.WorkspaceID); err != nil {
		return domain.Project{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, in.WorkspaceID, p.UserID); err != nil {
		return domain.Project{}, err
	}

	if in.TeamID != nil {
		team, err := s.teamRepository.GetByID(ctx, *in.TeamID)
		if err != nil {
			return domain.Project{}, err
		}
		if team.WorkspaceID != in.WorkspaceID {
			return domain.Project{}, domain.ErrTeamWorkspaceMismatch
		}
	}

	in.OwnerID = p.UserID
	return s.projectRepository.Create(ctx, in)
}

func (s *ProjectService) Get(ctx context.Context, p domain.Principal, id uint64) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, p.UserID); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) ListByWorkspace(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.Project, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, workspaceID, p.UserID); err != nil {
		return nil, err
	}
	return s.projectRepository.ListByWorkspace(ctx, workspaceID)
}

func (s *ProjectService) Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateProjectInput) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if project.OwnerID != p.UserID {
		return domain.Project{}, domain.ErrForbidden
	}

	if in.TeamIDSet && in.TeamID != nil {
		team, err := s.teamRepository.GetByID(ctx, *in.TeamID)
		if err != nil {
			return domain.Project{}, err
		}
		if team.WorkspaceID != project.WorkspaceID {
			return domain.Project{}, domain.ErrTeamWorkspaceMismatch
		}
	}

	return s.projectRepository.Update(ctx, id, in)
}

func (s *ProjectService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	project, err := s.projectRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.OwnerID != p.UserID {
		return domain.ErrForbidden
	}
	return s.projectRepository.Delete(ctx, id)
}

var _ ports.ProjectService = (*ProjectService)(nil)
