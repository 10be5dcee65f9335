package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

const (
	defaultQueryLimit = 20
	maxQueryLimit     = 200
)

type TaskService struct {
	taskRepository      ports.TaskRepository
	projectRepository   ports.ProjectRepository
	sectionRepository   ports.SectionRepository
	workspaceRepository ports.WorkspaceRepository
	userRepository      ports.UserRepository
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	sectionRepository ports.SectionRepository,
	workspaceRepository ports.WorkspaceRepository,
	userRepository ports.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepository:      taskRepository,
		projectRepository:   projectRepository,
		sectionRepository:   sectionRepository,
		workspaceRepository: workspaceRepository,
		userRepository:      userRepository,
	}
}

func (s *TaskService) Create(ctx context.Context, p domain.Principal, in domain.CreateTaskInput) (domain.Task, error) {
	project, err := s.projectRepository.GetByID(ctx, in.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, p.UserID); err != nil {
		return domain.Task{}, err
	}

	if in.SectionID != nil {
		section, err := s.sectionRepository.GetByID(ctx, *in.SectionID)
		if err != nil {
			return domain.Task{}, err
		}
		if section.ProjectID != in.ProjectID {
			return domain.Task{}, domain.ErrSectionProjectMismatch
		}
	}

	if in.ParentTaskID != nil {
		parent, err := s.taskRepository.GetByID(ctx, *in.ParentTaskID)
		if err != nil {
			return domain.Task{}, err
		}
		if parent.ProjectID != in.ProjectID {
			return domain.Task{}, domain.ErrParentProjectMismatch
		}
	}

	if in.AssigneeID != nil {
		if err := s.requireAssignable(ctx, project.WorkspaceID, *in.AssigneeID); err != nil {
			return domain.Task{}, err
		}
	}

	in.CreatorID = p.UserID
	return s.taskRepository.Create(ctx, in)
}

func (s *TaskService) Get(ctx context.Context, p domain.Principal, id uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.requireTaskMember(ctx, task, p.UserID); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Update applies a partial change set. Re-parenting is validated here for
// project affinity and the obvious self-parent case; the repository repeats
// the full cycle walk inside the write transaction.
func (s *TaskService) Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	project, err := s.projectRepository.GetByID(ctx, task.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, p.UserID); err != nil {
		return domain.Task{}, err
	}

	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.DescriptionSet {
		task.Description = in.Description
	}

	if in.SectionIDSet {
		if in.SectionID != nil {
			section, err := s.sectionRepository.GetByID(ctx, *in.SectionID)
			if err != nil {
				return domain.Task{}, err
			}
			if section.ProjectID != task.ProjectID {
				return domain.Task{}, domain.ErrSectionProjectMismatch
			}
		}
		task.SectionID = in.SectionID
	}

	if in.ParentTaskIDSet {
		if in.ParentTaskID != nil {
			if *in.ParentTaskID == task.ID {
				return domain.Task{}, domain.ErrTaskHierarchyCycle
			}
			parent, err := s.taskRepository.GetByID(ctx, *in.ParentTaskID)
			if err != nil {
				return domain.Task{}, err
			}
			if parent.ProjectID != task.ProjectID {
				return domain.Task{}, domain.ErrParentProjectMismatch
			}
		}
		task.ParentTaskID = in.ParentTaskID
	}

	if in.AssigneeIDSet {
		if in.AssigneeID != nil {
			if err := s.requireAssignable(ctx, project.WorkspaceID, *in.AssigneeID); err != nil {
				return domain.Task{}, err
			}
		}
		task.AssigneeID = in.AssigneeID
	}

	if in.DueDateSet {
		task.DueDate = in.DueDate
	}

	if in.Completed != nil {
		if *in.Completed {
			if task.CompletedAt == nil {
				now := time.Now().UTC().Truncate(time.Second)
				task.CompletedAt = &now
			}
		} else {
			task.CompletedAt = nil
		}
	}

	if in.Position != nil {
		task.Position = *in.Position
	}

	return s.taskRepository.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireTaskMember(ctx, task, p.UserID); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) ListSubtasks(ctx context.Context, p domain.Principal, parentID uint64) ([]domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireTaskMember(ctx, task, p.UserID); err != nil {
		return nil, err
	}
	return s.taskRepository.ListSubtasks(ctx, parentID)
}

// Query validates scope filters against the workspace, checks the paging
// bounds and hands the conjunction to the repository. A project filter pointing outside
// the workspace reads as if the project did not exist.
func (s *TaskService) Query(ctx context.Context, p domain.Principal, q domain.TaskQuery) (domain.TaskPage, error) {
	if _, err := s.workspaceRepository.GetByID(ctx, q.WorkspaceID); err != nil {
		return domain.TaskPage{}, err
	}
	if err := requireWorkspaceMember(ctx, s.workspaceRepository, q.WorkspaceID, p.UserID); err != nil {
		return domain.TaskPage{}, err
	}

	if q.ProjectID != nil {
		project, err := s.projectRepository.GetByID(ctx, *q.ProjectID)
		if err != nil {
			return domain.TaskPage{}, err
		}
		if project.WorkspaceID != q.WorkspaceID {
			return domain.TaskPage{}, domain.ErrProjectNotFound
		}
	}

	if q.Limit == 0 {
		q.Limit = defaultQueryLimit
	}
	if q.Limit < 1 || q.Limit > maxQueryLimit {
		return domain.TaskPage{}, fmt.Errorf("limit must be between 1 and %d: %w", maxQueryLimit, domain.ErrInvalidInput)
	}
	if q.Offset < 0 {
		return domain.TaskPage{}, fmt.Errorf("offset must not be negative: %w", domain.ErrInvalidInput)
	}

	return s.taskRepository.Query(ctx, q)
}

func (s *TaskService) requireTaskMember(ctx context.Context, task domain.Task, userID uint64) error {
	project, err := s.projectRepository.GetByID(ctx, task.ProjectID)
	if err != nil {
		return err
	}
	return requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, userID)
}

func (s *TaskService) requireAssignable(ctx context.Context, workspaceID, assigneeID uint64) error {
	if _, err := s.userRepository.GetByID(ctx, assigneeID); err != nil {
		return err
	}
	isMember, err := s.workspaceRepository.IsMember(ctx, workspaceID, assigneeID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrAssigneeNotMember
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
