package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type CustomFieldRepository interface {
	Create(ctx context.Context, in domain.CreateCustomFieldInput) (domain.CustomField, error)
	GetByID(ctx context.Context, id uint64) (domain.CustomField, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.CustomField, error)
	// Update rejects a type change with ErrFieldHasValues while any task
	// still stores a value for the field; the check runs inside the write
	// transaction.
	Update(ctx context.Context, id uint64, in domain.UpdateCustomFieldInput) (domain.CustomField, error)
	// Delete removes the field with its options and stored values.
	Delete(ctx context.Context, id uint64) error
	AddOption(ctx context.Context, fieldID uint64, in domain.CreateFieldOptionInput) (domain.FieldOption, error)
	// SetValue upserts; for single select values it resolves the option
	// string to its row inside the transaction and fails with
	// ErrUnknownOption when no option matches.
	SetValue(ctx context.Context, taskID, fieldID uint64, v domain.FieldValue) (domain.FieldValue, error)
	ClearValue(ctx context.Context, taskID, fieldID uint64) error
	ListValues(ctx context.Context, taskID uint64) ([]domain.TaskFieldValue, error)
	HasValues(ctx context.Context, fieldID uint64) (bool, error)
}

type CustomFieldService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateCustomFieldInput) (domain.CustomField, error)
	ListByProject(ctx context.Context, p domain.Principal, projectID uint64) ([]domain.CustomField, error)
	Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateCustomFieldInput) (domain.CustomField, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
	AddOption(ctx context.Context, p domain.Principal, fieldID uint64, in domain.CreateFieldOptionInput) (domain.FieldOption, error)
	// SetValue takes the raw JSON payload and interprets it against the
	// field's declared type before anything is written.
	SetValue(ctx context.Context, p domain.Principal, taskID, fieldID uint64, raw any) (domain.TaskFieldValue, error)
	ClearValue(ctx context.Context, p domain.Principal, taskID, fieldID uint64) error
	ListValues(ctx context.Context, p domain.Principal, taskID uint64) ([]domain.TaskFieldValue, error)
}
