package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	// Update persists the full row. When the parent changed it re-walks the
	// ancestor chain inside the write transaction and rejects cycles, so the
	// check and the write cannot be split by a concurrent move.
	Update(ctx context.Context, t domain.Task) (domain.Task, error)
	// Delete removes the task and its whole subtree with comments,
	// attachments, tag links and field values, in one transaction.
	Delete(ctx context.Context, id uint64) error
	ListSubtasks(ctx context.Context, parentID uint64) ([]domain.Task, error)
	// Query applies the conjunction of filters and returns one page ordered
	// by id plus the total match count before pagination.
	Query(ctx context.Context, q domain.TaskQuery) (domain.TaskPage, error)
}

type TaskService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, p domain.Principal, id uint64) (domain.Task, error)
	Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
	ListSubtasks(ctx context.Context, p domain.Principal, parentID uint64) ([]domain.Task, error)
	Query(ctx context.Context, p domain.Principal, q domain.TaskQuery) (domain.TaskPage, error)
}
