package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type AttachmentService struct {
	attachmentRepository ports.AttachmentRepository
	commentRepository    ports.CommentRepository
	taskRepository       ports.TaskRepository
	projectRepository    ports.ProjectRepository
	workspaceRepository  ports.WorkspaceRepository
}

func NewAttachmentService(
	attachmentRepository ports.AttachmentRepository,
	commentRepository ports.CommentRepository,
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	workspaceRepository ports.WorkspaceRepository,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepository: attachmentRepository,
		commentRepository:    commentRepository,
		taskRepository:       taskRepository,
		projectRepository:    projectRepository,
		workspaceRepository:  workspaceRepository,
	}
}

// Create pins the attachment to exactly one parent. Both parents present or
// both absent is rejected before any lookup.
func (s *AttachmentService) Create(ctx context.Context, p domain.Principal, in domain.CreateAttachmentInput) (domain.Attachment, error) {
	if err := in.Validate(); err != nil {
		return domain.Attachment{}, err
	}

	taskID := in.TaskID
	if in.CommentID != nil {
		comment, err := s.commentRepository.GetByID(ctx, *in.CommentID)
		if err != nil {
			return domain.Attachment{}, err
		}
		taskID = &comment.TaskID
	}

	if err := s.requireTaskMember(ctx, *taskID, p.UserID); err != nil {
		return domain.Attachment{}, err
	}

	in.UploaderID = p.UserID
	return s.attachmentRepository.Create(ctx, in)
}

func (s *AttachmentService) ListByTask(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.Attachment, error) {
	if err := s.requireTaskMember(ctx, taskID, p.UserID); err != nil {
		return nil, err
	}
	return s.attachmentRepository.ListByTask(ctx, taskID)
}

func (s *AttachmentService) ListByComment(ctx context.Context, p domain.Principal, commentID uint64) ([]domain.Attachment, error) {
	comment, err := s.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireTaskMember(ctx, comment.TaskID, p.UserID); err != nil {
		return nil, err
	}
	return s.attachmentRepository.ListByComment(ctx, commentID)
}

// Delete is uploader-only.
func (s *AttachmentService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	attachment, err := s.attachmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if attachment.UploaderID != p.UserID {
		return domain.ErrForbidden
	}
	return s.attachmentRepository.Delete(ctx, id)
}

func (s *AttachmentService) requireTaskMember(ctx context.Context, taskID, userID uint64) error {
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

var _ ports.AttachmentService = (*AttachmentService)(nil)
