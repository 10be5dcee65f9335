package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type CustomFieldRepository struct {
	db *sqlx.DB
}

type customFieldRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	ProjectID uint64    `db:"project_id"`
	CreatedAt time.Time `db:"created_at"`
}

type fieldOptionRow struct {
	ID            uint64         `db:"id"`
	CustomFieldID uint64         `db:"custom_field_id"`
	Value         string         `db:"value"`
	Color         sql.NullString `db:"color"`
	Position      int            `db:"position"`
}

type fieldValueRow struct {
	TaskID        uint64          `db:"task_id"`
	CustomFieldID uint64          `db:"custom_field_id"`
	ValueText     sql.NullString  `db:"value_text"`
	ValueNumber   sql.NullFloat64 `db:"value_number"`
	ValueDate     sql.NullTime    `db:"value_date"`
	ValueBoolean  sql.NullBool    `db:"value_boolean"`
	ValueOptionID sql.NullInt64   `db:"value_option_id"`

	FieldName      string         `db:"field_name"`
	FieldType      string         `db:"field_type"`
	FieldProjectID uint64         `db:"field_project_id"`
	FieldCreatedAt time.Time      `db:"field_created_at"`
	OptionValue    sql.NullString `db:"option_value"`
}

var _ ports.CustomFieldRepository = (*CustomFieldRepository)(nil)

func NewCustomFieldRepository(db *sqlx.DB) *CustomFieldRepository {
	return &CustomFieldRepository{db: db}
}

func (r *CustomFieldRepository) Create(ctx context.Context, in domain.CreateCustomFieldInput) (domain.CustomField, error) {
	now := nowUTC()
	field := domain.CustomField{
		Name:      in.Name,
		Type:      in.Type,
		ProjectID: in.ProjectID,
		CreatedAt: now,
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO custom_fields (name, type, project_id, created_at) VALUES (?, ?, ?, ?)`,
			in.Name, string(in.Type), in.ProjectID, now,
		)
		if err != nil {
			return err
		}
		lastID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		field.ID = uint64(lastID)

		for i, opt := range in.Options {
			optRes, err := tx.Exec(
				`INSERT INTO custom_field_options (custom_field_id, value, color, position) VALUES (?, ?, ?, ?)`,
				field.ID, opt.Value, opt.Color, i,
			)
			if err != nil {
				return err
			}
			optID, err := optRes.LastInsertId()
			if err != nil {
				return err
			}
			field.Options = append(field.Options, domain.FieldOption{
				ID:            uint64(optID),
				CustomFieldID: field.ID,
				Value:         opt.Value,
				Color:         opt.Color,
				Position:      i,
			})
		}
		return nil
	})
	if err != nil {
		return domain.CustomField{}, err
	}
	return field, nil
}

func (r *CustomFieldRepository) GetByID(ctx context.Context, id uint64) (domain.CustomField, error) {
	var row customFieldRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM custom_fields WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CustomField{}, domain.ErrFieldNotFound
	}
	if err != nil {
		return domain.CustomField{}, err
	}

	field := mapCustomFieldRowToDomain(row)
	options, err := r.listOptions(ctx, id)
	if err != nil {
		return domain.CustomField{}, err
	}
	field.Options = options
	return field, nil
}

func (r *CustomFieldRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.CustomField, error) {
	var rows []customFieldRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM custom_fields WHERE project_id = ? ORDER BY id`, projectID)
	if err != nil {
		return nil, err
	}

	fields := make([]domain.CustomField, 0, len(rows))
	for _, row := range rows {
		field := mapCustomFieldRowToDomain(row)
		if field.Type == domain.FieldTypeSingleSelect {
			options, err := r.listOptions(ctx, field.ID)
			if err != nil {
				return nil, err
			}
			field.Options = options
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// Update renames freely but refuses to change the type while any task still
// stores a value, since those rows would stop matching the declared shape.
// Moving away from single select drops the now meaningless options; moving
// to single select is refused because the update carries no options.
func (r *CustomFieldRepository) Update(ctx context.Context, id uint64, in domain.UpdateCustomFieldInput) (domain.CustomField, error) {
	var updated domain.CustomField

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row customFieldRow
		err := tx.Get(&row, `SELECT * FROM custom_fields WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFieldNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil {
			row.Name = *in.Name
		}
		if in.Type != nil && string(*in.Type) != row.Type {
			// The update carries no options, so retyping to single select
			// would leave a field no value can ever match.
			if *in.Type == domain.FieldTypeSingleSelect {
				return domain.ErrOptionsRequired
			}
			var count int
			if err := tx.Get(&count,
				`SELECT COUNT(*) FROM task_custom_field_values WHERE custom_field_id = ?`, id); err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrFieldHasValues
			}
			if row.Type == string(domain.FieldTypeSingleSelect) {
				if _, err := tx.Exec(`DELETE FROM custom_field_options WHERE custom_field_id = ?`, id); err != nil {
					return err
				}
			}
			row.Type = string(*in.Type)
		}

		if _, err := tx.Exec(`UPDATE custom_fields SET name = ?, type = ? WHERE id = ?`,
			row.Name, row.Type, id); err != nil {
			return err
		}

		updated = mapCustomFieldRowToDomain(row)
		return nil
	})
	if err != nil {
		return domain.CustomField{}, err
	}

	options, err := r.listOptions(ctx, id)
	if err != nil {
		return domain.CustomField{}, err
	}
	updated.Options = options
	return updated, nil
}

func (r *CustomFieldRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`DELETE FROM task_custom_field_values WHERE custom_field_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM custom_field_options WHERE custom_field_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.Exec(`DELETE FROM custom_fields WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrFieldNotFound
		}
		return nil
	})
}

func (r *CustomFieldRepository) AddOption(ctx context.Context, fieldID uint64, in domain.CreateFieldOptionInput) (domain.FieldOption, error) {
	var option domain.FieldOption

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var position int
		if err := tx.Get(&position,
			`SELECT COUNT(*) FROM custom_field_options WHERE custom_field_id = ?`, fieldID); err != nil {
			return err
		}

		res, err := tx.Exec(
			`INSERT INTO custom_field_options (custom_field_id, value, color, position) VALUES (?, ?, ?, ?)`,
			fieldID, in.Value, in.Color, position,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		option = domain.FieldOption{
			ID:            uint64(id),
			CustomFieldID: fieldID,
			Value:         in.Value,
			Color:         in.Color,
			Position:      position,
		}
		return nil
	})
	if err != nil {
		return domain.FieldOption{}, err
	}
	return option, nil
}

// SetValue upserts the single row a task keeps per field. Option strings are
// resolved to option rows here, inside the transaction, so a concurrently
// deleted option cannot leave a dangling reference.
func (r *CustomFieldRepository) SetValue(ctx context.Context, taskID, fieldID uint64, v domain.FieldValue) (domain.FieldValue, error) {
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if v.Type == domain.FieldTypeSingleSelect {
			var opt fieldOptionRow
			err := tx.Get(&opt,
				`SELECT * FROM custom_field_options WHERE custom_field_id = ? AND value = ?`,
				fieldID, *v.Option)
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrUnknownOption
			}
			if err != nil {
				return err
			}
			optID := opt.ID
			v.OptionID = &optID
		}

		var count int
		if err := tx.Get(&count,
			`SELECT COUNT(*) FROM task_custom_field_values WHERE task_id = ? AND custom_field_id = ?`,
			taskID, fieldID); err != nil {
			return err
		}

		if count > 0 {
			_, err := tx.Exec(`
UPDATE task_custom_field_values
SET value_text = ?, value_number = ?, value_date = ?, value_boolean = ?, value_option_id = ?
WHERE task_id = ? AND custom_field_id = ?`,
				v.Text, v.Number, v.Date, v.Boolean, v.OptionID, taskID, fieldID)
			return err
		}

		_, err := tx.Exec(`
INSERT INTO task_custom_field_values
  (task_id, custom_field_id, value_text, value_number, value_date, value_boolean, value_option_id)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			taskID, fieldID, v.Text, v.Number, v.Date, v.Boolean, v.OptionID)
		return err
	})
	if err != nil {
		return domain.FieldValue{}, err
	}
	return v, nil
}

// ClearValue is idempotent; clearing a field that holds no value succeeds.
func (r *CustomFieldRepository) ClearValue(ctx context.Context, taskID, fieldID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM task_custom_field_values WHERE task_id = ? AND custom_field_id = ?`,
		taskID, fieldID,
	)
	return err
}

func (r *CustomFieldRepository) ListValues(ctx context.Context, taskID uint64) ([]domain.TaskFieldValue, error) {
	var rows []fieldValueRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT
  v.*,
  f.name AS field_name,
  f.type AS field_type,
  f.project_id AS field_project_id,
  f.created_at AS field_created_at,
  o.value AS option_value
FROM task_custom_field_values v
JOIN custom_fields f ON f.id = v.custom_field_id
LEFT JOIN custom_field_options o ON o.id = v.value_option_id
WHERE v.task_id = ?
ORDER BY v.custom_field_id`, taskID)
	if err != nil {
		return nil, err
	}

	values := make([]domain.TaskFieldValue, 0, len(rows))
	for _, row := range rows {
		values = append(values, mapFieldValueRowToDomain(row))
	}
	return values, nil
}

func (r *CustomFieldRepository) HasValues(ctx context.Context, fieldID uint64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM task_custom_field_values WHERE custom_field_id = ?`, fieldID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomFieldRepository) listOptions(ctx context.Context, fieldID uint64) ([]domain.FieldOption, error) {
	var rows []fieldOptionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM custom_field_options WHERE custom_field_id = ? ORDER BY position, id`, fieldID)
	if err != nil {
		return nil, err
	}

	options := make([]domain.FieldOption, 0, len(rows))
	for _, row := range rows {
		options = append(options, mapFieldOptionRowToDomain(row))
	}
	return options, nil
}

func mapCustomFieldRowToDomain(row customFieldRow) domain.CustomField {
	return domain.CustomField{
		ID:        row.ID,
		Name:      row.Name,
		Type:      domain.FieldType(row.Type),
		ProjectID: row.ProjectID,
		CreatedAt: row.CreatedAt,
	}
}

func mapFieldOptionRowToDomain(row fieldOptionRow) domain.FieldOption {
	option := domain.FieldOption{
		ID:            row.ID,
		CustomFieldID: row.CustomFieldID,
		Value:         row.Value,
		Position:      row.Position,
	}

	if row.Color.Valid {
		value := row.Color.String
		option.Color = &value
	}

	return option
}

func mapFieldValueRowToDomain(row fieldValueRow) domain.TaskFieldValue {
	out := domain.TaskFieldValue{
		Field: domain.CustomField{
			ID:        row.CustomFieldID,
			Name:      row.FieldName,
			Type:      domain.FieldType(row.FieldType),
			ProjectID: row.FieldProjectID,
			CreatedAt: row.FieldCreatedAt,
		},
		Value: domain.FieldValue{Type: domain.FieldType(row.FieldType)},
	}

	if row.ValueText.Valid {
		value := row.ValueText.String
		out.Value.Text = &value
	}
	if row.ValueNumber.Valid {
		value := row.ValueNumber.Float64
		out.Value.Number = &value
	}
	if row.ValueDate.Valid {
		value := row.ValueDate.Time
		out.Value.Date = &value
	}
	if row.ValueBoolean.Valid {
		value := row.ValueBoolean.Bool
		out.Value.Boolean = &value
	}
	if row.ValueOptionID.Valid {
		value := uint64(row.ValueOptionID.Int64)
		out.Value.OptionID = &value
	}
	if row.OptionValue.Valid {
		value := row.OptionValue.String
		out.Value.Option = &value
	}

	return out
}
