package domain

import (
	"errors"
	"fmt"
)

// Category sentinels. Handlers map these to HTTP statuses; entity-specific
// errors below wrap one of them so errors.Is works on both levels.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrWorkspaceNotFound  = fmt.Errorf("workspace %w", ErrNotFound)
	ErrTeamNotFound       = fmt.Errorf("team %w", ErrNotFound)
	ErrProjectNotFound    = fmt.Errorf("project %w", ErrNotFound)
	ErrSectionNotFound    = fmt.Errorf("section %w", ErrNotFound)
	ErrTaskNotFound       = fmt.Errorf("task %w", ErrNotFound)
	ErrTagNotFound        = fmt.Errorf("tag %w", ErrNotFound)
	ErrFieldNotFound      = fmt.Errorf("custom field %w", ErrNotFound)
	ErrCommentNotFound    = fmt.Errorf("comment %w", ErrNotFound)
	ErrAttachmentNotFound = fmt.Errorf("attachment %w", ErrNotFound)
	ErrMembershipNotFound = fmt.Errorf("membership %w", ErrNotFound)
)

var (
	ErrTaskHierarchyCycle     = fmt.Errorf("task hierarchy cycle: %w", ErrInvalidInput)
	ErrTaskHierarchyTooDeep   = fmt.Errorf("task hierarchy too deep: %w", ErrInvalidInput)
	ErrTaskProjectImmutable   = fmt.Errorf("task cannot move across projects: %w", ErrInvalidInput)
	ErrParentProjectMismatch  = fmt.Errorf("parent task belongs to another project: %w", ErrInvalidInput)
	ErrSectionProjectMismatch = fmt.Errorf("section belongs to another project: %w", ErrInvalidInput)
	ErrTeamWorkspaceMismatch  = fmt.Errorf("team belongs to another workspace: %w", ErrInvalidInput)
	ErrTagWorkspaceMismatch   = fmt.Errorf("tag belongs to another workspace: %w", ErrInvalidInput)
	ErrFieldProjectMismatch   = fmt.Errorf("custom field belongs to another project: %w", ErrInvalidInput)
	ErrValueTypeMismatch      = fmt.Errorf("value does not match field type: %w", ErrInvalidInput)
	ErrUnknownOption          = fmt.Errorf("unknown select option: %w", ErrInvalidInput)
	ErrOptionsRequired        = fmt.Errorf("single select field needs options: %w", ErrInvalidInput)
	ErrOptionsNotAllowed      = fmt.Errorf("options only apply to single select fields: %w", ErrInvalidInput)
	ErrAttachmentTarget       = fmt.Errorf("attachment needs exactly one of task or comment: %w", ErrInvalidInput)
	ErrAssigneeNotMember      = fmt.Errorf("assignee is not a workspace member: %w", ErrInvalidInput)
	ErrUserNotInWorkspace     = fmt.Errorf("user is not a workspace member: %w", ErrInvalidInput)
)

var (
	ErrTagNameTaken   = fmt.Errorf("tag name already used in workspace: %w", ErrConflict)
	ErrEmailTaken     = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrFieldHasValues = fmt.Errorf("custom field still has stored values: %w", ErrConflict)
)

// ErrBadCredentials deliberately wraps ErrUnauthorized, not ErrNotFound, so a
// failed login never reveals whether the email exists.
var ErrBadCredentials = fmt.Errorf("bad credentials: %w", ErrUnauthorized)
