package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type CommentService struct {
	commentRepository   ports.CommentRepository
	taskRepository      ports.TaskRepository
	projectRepository   ports.ProjectRepository
	workspaceRepository ports.WorkspaceRepository
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	workspaceRepository ports.WorkspaceRepository,
) *CommentService {
	return &CommentService{
		commentRepository:   commentRepository,
		taskRepository:      taskRepository,
		projectRepository:   projectRepository,
		workspaceRepository: workspaceRepository,
	}
}

func (s *CommentService) Create(ctx context.Context, p domain.Principal, taskID uint64, text string) (domain.Comment, error) {
	if err := s.requireTaskMember(ctx, taskID, p.UserID); err != nil {
		return domain.Comment{}, err
	}
	return s.commentRepository.Create(ctx, domain.CreateCommentInput{
		Text:     text,
		TaskID:   taskID,
		AuthorID: p.UserID,
	})
}

func (s *CommentService) ListByTask(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.Comment, error) {
	if err := s.requireTaskMember(ctx, taskID, p.UserID); err != nil {
		return nil, err
	}
	return s.commentRepository.ListByTask(ctx, taskID)
}

// Update and Delete are author-only; other members can read but not touch.
func (s *CommentService) Update(ctx context.Context, p domain.Principal, id uint64, text string) (domain.Comment, error) {
	comment, err := s.commentRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if comment.AuthorID != p.UserID {
		return domain.Comment{}, domain.ErrForbidden
	}
	return s.commentRepository.Update(ctx, id, text)
}

func (s *CommentService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	comment, err := s.commentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != p.UserID {
		return domain.ErrForbidden
	}
	return s.commentRepository.Delete(ctx, id)
}

func (s *CommentService) requireTaskMember(ctx context.Context, taskID, userID uint64) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	project, err := s.projectRepository.GetByID(ctx, task.ProjectID)
	if err != nil {
		return err
	}
	return requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, userID)
}

var _ ports.CommentService = (*CommentService)(nil)
