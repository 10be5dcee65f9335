package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	ProjectID    uint64         `db:"project_id"`
	SectionID    sql.NullInt64  `db:"section_id"`
	ParentTaskID sql.NullInt64  `db:"parent_task_id"`
	AssigneeID   sql.NullInt64  `db:"assignee_id"`
	CreatorID    uint64         `db:"creator_id"`
	DueDate      sql.NullTime   `db:"due_date"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	Position     int            `db:"position"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks
  (name, description, project_id, section_id, parent_task_id, assignee_id, creator_id, due_date, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Description, in.ProjectID, in.SectionID, in.ParentTaskID,
		in.AssigneeID, in.CreatorID, in.DueDate, in.Position, now, now,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return domain.Task{
		ID:           uint64(id),
		Name:         in.Name,
		Description:  in.Description,
		ProjectID:    in.ProjectID,
		SectionID:    in.SectionID,
		ParentTaskID: in.ParentTaskID,
		AssigneeID:   in.AssigneeID,
		CreatorID:    in.CreatorID,
		DueDate:      in.DueDate,
		Position:     in.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

// Update writes the full row. When the parent changed it first walks the new
// parent's ancestor chain inside the same transaction: finding the task
// itself on that chain means the move would close a loop, and the write is
// abandoned with the row untouched.
func (r *TaskRepository) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current taskRow
		err := tx.Get(&current, `SELECT * FROM tasks WHERE id = ?`, t.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		if err != nil {
			return err
		}

		parentChanged := !nullableEqual(current.ParentTaskID, t.ParentTaskID)
		if parentChanged && t.ParentTaskID != nil {
			if err := ensureNoCycle(tx, t.ID, *t.ParentTaskID); err != nil {
				return err
			}
		}

		t.UpdatedAt = nowUTC()
		_, err = tx.Exec(`
UPDATE tasks SET
  name = ?, description = ?, section_id = ?, parent_task_id = ?, assignee_id = ?,
  due_date = ?, completed_at = ?, position = ?, updated_at = ?
WHERE id = ?`,
			t.Name, t.Description, t.SectionID, t.ParentTaskID, t.AssigneeID,
			t.DueDate, t.CompletedAt, t.Position, t.UpdatedAt, t.ID,
		)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return t, nil
}

// ensureNoCycle climbs from the candidate parent to the root. Hitting taskID
// on the way up means taskID is an ancestor of the candidate, so adopting it
// would form a cycle. The climb also counts the chain: the candidate parent
// is ancestor number one, and the adopted task would sit below all of them,
// so a parent already carrying MaxTaskDepth-1 ancestors of its own is the
// deepest one still acceptable.
func ensureNoCycle(tx *sqlx.Tx, taskID, parentID uint64) error {
	cursor := parentID
	for depth := 1; depth < domain.MaxTaskDepth; depth++ {
		if cursor == taskID {
			return domain.ErrTaskHierarchyCycle
		}
		var next sql.NullInt64
		err := tx.Get(&next, `SELECT parent_task_id FROM tasks WHERE id = ?`, cursor)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		if err != nil {
			return err
		}
		if !next.Valid {
			return nil
		}
		cursor = uint64(next.Int64)
	}
	return domain.ErrTaskHierarchyTooDeep
}

// Delete removes the task and every descendant, plus the comments,
// attachments, tag links and field values hanging off any of them. The
// subtree is gathered breadth first before anything is touched.
func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var exists int
		if err := tx.Get(&exists, `SELECT COUNT(*) FROM tasks WHERE id = ?`, id); err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrTaskNotFound
		}

		levels, err := collectTaskLevels(tx, []uint64{id})
		if err != nil {
			return err
		}
		if err := deleteTaskChildRows(tx, flattenLevels(levels)); err != nil {
			return err
		}
		return deleteTasksBottomUp(tx, levels)
	})
}

// collectTaskLevels walks the forest under the given roots breadth first and
// returns one slice of ids per depth level, roots first. With the parent
// chain acyclic and bounded the walk always terminates.
func collectTaskLevels(tx *sqlx.Tx, roots []uint64) ([][]uint64, error) {
	if len(roots) == 0 {
		return nil, nil
	}
	levels := [][]uint64{roots}
	frontier := roots
	for len(frontier) > 0 {
		next, err := collectIDs(tx, `SELECT id FROM tasks WHERE parent_task_id IN (?)`, frontier)
		if err != nil {
			return nil, err
		}
		if len(next) > 0 {
			levels = append(levels, next)
		}
		frontier = next
	}
	return levels, nil
}

func flattenLevels(levels [][]uint64) []uint64 {
	var all []uint64
	for _, level := range levels {
		all = append(all, level...)
	}
	return all
}

// deleteTasksBottomUp removes the collected levels deepest first. The parent
// foreign key is checked per row within a DELETE, so a child must be gone
// before its parent goes; within one level no row references another.
func deleteTasksBottomUp(tx *sqlx.Tx, levels [][]uint64) error {
	for i := len(levels) - 1; i >= 0; i-- {
		if err := deleteIn(tx, `DELETE FROM tasks WHERE id IN (?)`, levels[i]); err != nil {
			return err
		}
	}
	return nil
}

// deleteTaskChildRows clears everything referencing the given tasks:
// attachments (both direct and via comments), comments, custom field values
// and tag links. Shared with the project and workspace cascades.
func deleteTaskChildRows(tx *sqlx.Tx, taskIDs []uint64) error {
	if len(taskIDs) == 0 {
		return nil
	}

	commentIDs, err := collectIDs(tx, `SELECT id FROM comments WHERE task_id IN (?)`, taskIDs)
	if err != nil {
		return err
	}
	if err := deleteIn(tx, `DELETE FROM attachments WHERE comment_id IN (?)`, commentIDs); err != nil {
		return err
	}
	if err := deleteIn(tx, `DELETE FROM attachments WHERE task_id IN (?)`, taskIDs); err != nil {
		return err
	}
	if err := deleteIn(tx, `DELETE FROM comments WHERE id IN (?)`, commentIDs); err != nil {
		return err
	}
	if err := deleteIn(tx, `DELETE FROM task_custom_field_values WHERE task_id IN (?)`, taskIDs); err != nil {
		return err
	}
	return deleteIn(tx, `DELETE FROM task_tags WHERE task_id IN (?)`, taskIDs)
}

func (r *TaskRepository) ListSubtasks(ctx context.Context, parentID uint64) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM tasks WHERE parent_task_id = ? ORDER BY position, id`, parentID)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

// Query stacks every requested filter into one WHERE conjunction, counts the
// matches, then fetches a single page ordered by id.
func (r *TaskRepository) Query(ctx context.Context, q domain.TaskQuery) (domain.TaskPage, error) {
	where := []string{"p.workspace_id = ?"}
	args := []any{q.WorkspaceID}

	if q.ProjectID != nil {
		where = append(where, "t.project_id = ?")
		args = append(args, *q.ProjectID)
	}
	if q.SectionID != nil {
		where = append(where, "t.section_id = ?")
		args = append(args, *q.SectionID)
	}
	if q.AssigneeID != nil {
		where = append(where, "t.assignee_id = ?")
		args = append(args, *q.AssigneeID)
	}
	if q.TagID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM task_tags tt WHERE tt.task_id = t.id AND tt.tag_id = ?)")
		args = append(args, *q.TagID)
	}
	if q.Completed != nil {
		if *q.Completed {
			where = append(where, "t.completed_at IS NOT NULL")
		} else {
			where = append(where, "t.completed_at IS NULL")
		}
	}
	if q.CompletedSince != nil {
		where = append(where, "t.completed_at IS NOT NULL", "t.completed_at >= ?")
		args = append(args, *q.CompletedSince)
	}
	if q.DueBefore != nil {
		where = append(where, "t.due_date IS NOT NULL", "t.due_date < ?")
		args = append(args, *q.DueBefore)
	}

	base := `FROM tasks t JOIN projects p ON p.id = t.project_id WHERE ` + strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) `+base, args...); err != nil {
		return domain.TaskPage{}, err
	}

	var rows []taskRow
	pageArgs := append(args, q.Limit, q.Offset)
	err := r.db.SelectContext(ctx, &rows, `SELECT t.* `+base+` ORDER BY t.id LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return domain.TaskPage{}, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return domain.TaskPage{Tasks: tasks, Total: total, Limit: q.Limit, Offset: q.Offset}, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Name:      row.Name,
		ProjectID: row.ProjectID,
		CreatorID: row.CreatorID,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.SectionID.Valid {
		value := uint64(row.SectionID.Int64)
		task.SectionID = &value
	}

	if row.ParentTaskID.Valid {
		value := uint64(row.ParentTaskID.Int64)
		task.ParentTaskID = &value
	}

	if row.AssigneeID.Valid {
		value := uint64(row.AssigneeID.Int64)
		task.AssigneeID = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	return task
}

func nullableEqual(n sql.NullInt64, p *uint64) bool {
	if !n.Valid {
		return p == nil
	}
	return p != nil && uint64(n.Int64) == *p
}
