package domain

import "time"

// MaxTaskDepth bounds the parent chain walked during re-parenting. Anything
// deeper is treated as a modeling mistake rather than a legitimate tree.
const MaxTaskDepth = 64

// Task belongs to exactly one project for its whole life. Sub-tasks point at
// their parent through ParentTaskID and always live in the same project.
type Task struct {
	ID           uint64
	Name         string
	Description  *string
	ProjectID    uint64
	SectionID    *uint64
	ParentTaskID *uint64
	AssigneeID   *uint64
	CreatorID    uint64
	DueDate      *time.Time
	CompletedAt  *time.Time
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t Task) Completed() bool {
	return t.CompletedAt != nil
}

type CreateTaskInput struct {
	Name         string
	Description  *string
	ProjectID    uint64
	SectionID    *uint64
	ParentTaskID *uint64
	AssigneeID   *uint64
	CreatorID    uint64
	DueDate      *time.Time
	Position     int
}

// UpdateTaskInput follows the pointer/flag PATCH convention: Set flags
// distinguish "clear" from "absent" for nullable fields. ProjectID is absent
// on purpose, tasks never move across projects.
type UpdateTaskInput struct {
	Name            *string
	Description     *string
	DescriptionSet  bool
	SectionID       *uint64
	SectionIDSet    bool
	ParentTaskID    *uint64
	ParentTaskIDSet bool
	AssigneeID      *uint64
	AssigneeIDSet   bool
	DueDate         *time.Time
	DueDateSet      bool
	Completed       *bool
	Position        *int
}

// TaskQuery is a conjunction: every non-nil filter must hold. CompletedSince
// additionally requires the task to be completed at all.
type TaskQuery struct {
	WorkspaceID    uint64
	ProjectID      *uint64
	SectionID      *uint64
	AssigneeID     *uint64
	TagID          *uint64
	Completed      *bool
	CompletedSince *time.Time
	DueBefore      *time.Time
	Limit          int
	Offset         int
}

// TaskPage carries one page plus the pre-pagination total so clients can
// paginate without a second counting round trip.
type TaskPage struct {
	Tasks  []Task
	Total  int
	Limit  int
	Offset int
}
