package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type SectionService struct {
	sectionRepository   ports.SectionRepository
	projectRepository   ports.ProjectRepository
	workspaceRepository ports.WorkspaceRepository
}

func NewSectionService(sectionRepository ports.SectionRepository, projectRepository ports.ProjectRepository, workspaceRepository ports.WorkspaceRepository) *SectionService {
	return &SectionService{
		sectionRepository:   sectionRepository,
		projectRepository:   projectRepository,
		workspaceRepository: workspaceRepository,
	}
}

func (s *SectionService) Create(ctx context.Context, p domain.Principal, in domain.CreateSectionInput) (domain.Section, error) {
	if err := s.requireProjectMember(ctx, in.ProjectID, p.UserID); err != nil {
		return domain.Section{}, err
	}
	return s.sectionRepository.Create(ctx, in)
}

func (s *SectionService) ListByProject(ctx context.Context, p domain.Principal, projectID uint64) ([]domain.Section, error) {
	if err := s.requireProjectMember(ctx, projectID, p.UserID); err != nil {
		return nil, err
	}
	return s.sectionRepository.ListByProject(ctx, projectID)
}

func (s *SectionService) Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateSectionInput) (domain.Section, error) {
	section, err := s.sectionRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Section{}, err
	}
	if err := s.requireProjectMember(ctx, section.ProjectID, p.UserID); err != nil {
		return domain.Section{}, err
	}
	return s.sectionRepository.Update(ctx, id, in)
}

func (s *SectionService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	section, err := s.sectionRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireProjectMember(ctx, section.ProjectID, p.UserID); err != nil {
		return err
	}
	return s.sectionRepository.Delete(ctx, id)
}

func (s *SectionService) requireProjectMember(ctx context.Context, projectID, userID uint64) error {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	return requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, userID)
}

var _ ports.SectionService = (*SectionService)(nil)
