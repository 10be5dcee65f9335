package service

import (
	"context"
	"fmt"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type CustomFieldService struct {
	fieldRepository     ports.CustomFieldRepository
	taskRepository      ports.TaskRepository
	projectRepository   ports.ProjectRepository
	workspaceRepository ports.WorkspaceRepository
}

func NewCustomFieldService(
	fieldRepository ports.CustomFieldRepository,
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	workspaceRepository ports.WorkspaceRepository,
) *CustomFieldService {
	return &CustomFieldService{
		fieldRepository:     fieldRepository,
		taskRepository:      taskRepository,
		projectRepository:   projectRepository,
		workspaceRepository: workspaceRepository,
	}
}

func (s *CustomFieldService) Create(ctx context.Context, p domain.Principal, in domain.CreateCustomFieldInput) (domain.CustomField, error) {
	if !in.Type.Valid() {
		return domain.CustomField{}, fmt.Errorf("unknown field type %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if in.Type == domain.FieldTypeSingleSelect && len(in.Options) == 0 {
		return domain.CustomField{}, domain.ErrOptionsRequired
	}
	if in.Type != domain.FieldTypeSingleSelect && len(in.Options) > 0 {
		return domain.CustomField{}, domain.ErrOptionsNotAllowed
	}

	if err := s.requireProjectMember(ctx, in.ProjectID, p.UserID); err != nil {
		return domain.CustomField{}, err
	}
	return s.fieldRepository.Create(ctx, in)
}

func (s *CustomFieldService) ListByProject(ctx context.Context, p domain.Principal, projectID uint64) ([]domain.CustomField, error) {
	if err := s.requireProjectMember(ctx, projectID, p.UserID); err != nil {
		return nil, err
	}
	return s.fieldRepository.ListByProject(ctx, projectID)
}

func (s *CustomFieldService) Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateCustomFieldInput) (domain.CustomField, error) {
	field, err := s.fieldRepository.GetByID(ctx, id)
	if err != nil {
		return domain.CustomField{}, err
	}
	if in.Type != nil && !in.Type.Valid() {
		return domain.CustomField{}, fmt.Errorf("unknown field type %q: %w", *in.Type, domain.ErrInvalidInput)
	}
	if err := s.requireProjectMember(ctx, field.ProjectID, p.UserID); err != nil {
		return domain.CustomField{}, err
	}
	return s.fieldRepository.Update(ctx, id, in)
}

func (s *CustomFieldService) Delete(ctx context.Context, p domain.Principal, id uint64) error {
	field, err := s.fieldRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireProjectMember(ctx, field.ProjectID, p.UserID); err != nil {
		return err
	}
	return s.fieldRepository.Delete(ctx, id)
}

func (s *CustomFieldService) AddOption(ctx context.Context, p domain.Principal, fieldID uint64, in domain.CreateFieldOptionInput) (domain.FieldOption, error) {
	field, err := s.fieldRepository.GetByID(ctx, fieldID)
	if err != nil {
		return domain.FieldOption{}, err
	}
	if field.Type != domain.FieldTypeSingleSelect {
		return domain.FieldOption{}, domain.ErrOptionsNotAllowed
	}
	if err := s.requireProjectMember(ctx, field.ProjectID, p.UserID); err != nil {
		return domain.FieldOption{}, err
	}
	return s.fieldRepository.AddOption(ctx, fieldID, in)
}

// SetValue interprets the raw payload against the field's declared type, the
// single dispatch point for the whole attribute engine. The field must be
// defined on the task's own project.
func (s *CustomFieldService) SetValue(ctx context.Context, p domain.Principal, taskID, fieldID uint64, raw any) (domain.TaskFieldValue, error) {
	_, field, err := s.resolveValueTarget(ctx, p, taskID, fieldID)
	if err != nil {
		return domain.TaskFieldValue{}, err
	}

	value, err := domain.ParseFieldValue(field.Type, raw)
	if err != nil {
		return domain.TaskFieldValue{}, err
	}

	stored, err := s.fieldRepository.SetValue(ctx, taskID, fieldID, value)
	if err != nil {
		return domain.TaskFieldValue{}, err
	}
	return domain.TaskFieldValue{Field: field, Value: stored}, nil
}

// ClearValue is idempotent; clearing a value that was never set succeeds.
func (s *CustomFieldService) ClearValue(ctx context.Context, p domain.Principal, taskID, fieldID uint64) error {
	if _, _, err := s.resolveValueTarget(ctx, p, taskID, fieldID); err != nil {
		return err
	}
	return s.fieldRepository.ClearValue(ctx, taskID, fieldID)
}

func (s *CustomFieldService) ListValues(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.TaskFieldValue, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.requireProjectMember(ctx, task.ProjectID, p.UserID); err != nil {
		return nil, err
	}
	return s.fieldRepository.ListValues(ctx, taskID)
}

func (s *CustomFieldService) resolveValueTarget(ctx context.Context, p domain.Principal, taskID, fieldID uint64) (domain.Task, domain.CustomField, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, domain.CustomField{}, err
	}
	field, err := s.fieldRepository.GetByID(ctx, fieldID)
	if err != nil {
		return domain.Task{}, domain.CustomField{}, err
	}
	if field.ProjectID != task.ProjectID {
		return domain.Task{}, domain.CustomField{}, domain.ErrFieldProjectMismatch
	}
	if err := s.requireProjectMember(ctx, task.ProjectID, p.UserID); err != nil {
		return domain.Task{}, domain.CustomField{}, err
	}
	return task, field, nil
}

func (s *CustomFieldService) requireProjectMember(ctx context.Context, projectID, userID uint64) error {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	return requireWorkspaceMember(ctx, s.workspaceRepository, project.WorkspaceID, userID)
}

var _ ports.CustomFieldService = (*CustomFieldService)(nil)
