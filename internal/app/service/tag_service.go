package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type TagService struct {
	tagRepository       ports.TagRepository
	taskRepository      ports.TaskRepository
	projectRepository   ports.ProjectRepository
	workspaceRepository ports.WorkspaceRepository
}

func NewTagService(
	tagRepository ports.TagRepository,
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	workspaceRepository ports.WorkspaceRepository,
) *TagService {
	return &TagService{
		tagRepository:       tagRepository,
		taskRepository:      taskRepository,
		projectRepository:   projectRepository,
		workspaceRepository: workspaceRepository,
	}
}

func (s *TagService) Create(ctx context.Context, p domain.Principal, in domain.CreateTagInput) (domain.Tag, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, in.WorkspaceID); err != nil {
		return domain.Tag{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, in.WorkspaceID, p.UserID); err != nil {
		return domain.Tag{}, err
	}
	return s.tagRepository.Create(ctx, in)
}

func (s *TagService) ListByWorkspace(ctx context.Context, p domain.Principal, workspaceID uint64) ([]domain.Tag, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, workspaceID, p.UserID); err != nil {
		return nil, err
	}
	return s.tagRepository.ListByWorkspace(ctx, workspaceID)
}

// Update renames or recolors; a rename collides with the same per-workspace
// uniqueness rule as Create.
func (s *TagService) Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateTagInput) (domain.Tag, error) {
	tag, err := s.tagRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Tag{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, tag.WorkspaceID, p.UserID); err != nil {
		return domain.Tag{}, err
	}
	return s.tagRepository.Update(ctx, id, in)
}

func (s *TagService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	tag, err := s.tagRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, tag.WorkspaceID, p.UserID); err != nil {
		return err
	}
	return s.tagRepository.Delete(ctx, id)
}

// Attach links a tag to a task when both live in the same workspace. Tags
// are workspace wide, so a task in any of the workspace's projects is fair
// game. Attaching twice is a no-op.
func (s *TagService) Attach(ctx context.Context, p domain.Principal, taskID, tagID uint64) error {
	if err := s.checkPair(ctx, p, taskID, tagID); err != nil {
		return err
	}
	return s.tagRepository.Attach(ctx, taskID, tagID)
}

func (s *TagService) Detach(ctx context.Context, p domain.Principal, taskID, tagID uint64) error {
	if err := s.checkPair(ctx, p, taskID, tagID); err != nil {
		return err
	}
	return s.tagRepository.Detach(ctx, taskID, tagID)
}

func (s *TagService) ListForTask(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.Tag, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepository.GetByID(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, p.UserID); err != nil {
		return nil, err
	}
	return s.tagRepository.ListForTask(ctx, taskID)
}

// checkPair resolves both ends of a tag link, verifies they share a
// workspace and that the caller belongs to it.
func (s *TagService) checkPair(ctx context.Context, p domain.Principal, taskID, tagID uint64) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	tag, err := s.tagRepository.GetByID(ctx, tagID)
	if err != nil {
		return err
	}

	project, err := s.projectRepository.GetByID(ctx, task.ProjectID)
	if err != nil {
		return err
	}
	if tag.WorkspaceID != project.WorkspaceID {
		return domain.ErrTagWorkspaceMismatch
	}

	return requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, p.UserID)
}

var _ ports.TagService = (*TagService)(nil)
