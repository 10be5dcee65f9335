package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goer/asana-clone/internal/core/domain"
)

func (f fixture) createSelectField(t *testing.T, values ...string) domain.CustomField {
	t.Helper()
	in := domain.CreateCustomFieldInput{
		Name:      "Priority",
		Type:      domain.FieldTypeSingleSelect,
		ProjectID: f.Project.ID,
	}
	for _, value := range values {
		in.Options = append(in.Options, domain.CreateFieldOptionInput{Value: value})
	}
	field, err := NewCustomFieldRepository(f.DB).Create(context.Background(), in)
	require.NoError(t, err)
	return field
}

func TestCustomFieldRepository_CreateWithOptions(t *testing.T) {
	f := newFixture(t)
	field := f.createSelectField(t, "High", "Low")

	require.NotZero(t, field.ID)
	require.Len(t, field.Options, 2)
	require.Equal(t, "High", field.Options[0].Value)
	require.Equal(t, 0, field.Options[0].Position)
	require.Equal(t, "Low", field.Options[1].Value)
	require.Equal(t, 1, field.Options[1].Position)

	got, err := NewCustomFieldRepository(f.DB).GetByID(context.Background(), field.ID)
	require.NoError(t, err)
	require.Equal(t, domain.FieldTypeSingleSelect, got.Type)
	require.Len(t, got.Options, 2)
}

func TestCustomFieldRepository_SetValue_ResolvesOption(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)

	field := f.createSelectField(t, "High", "Low")
	task := f.createTask(t, "task", nil)

	option := "High"
	stored, err := repo.SetValue(ctx, task.ID, field.ID, domain.FieldValue{
		Type: domain.FieldTypeSingleSelect, Option: &option,
	})
	require.NoError(t, err)
	require.Equal(t, field.Options[0].ID, *stored.OptionID)

	unknown := "Critical"
	_, err = repo.SetValue(ctx, task.ID, field.ID, domain.FieldValue{
		Type: domain.FieldTypeSingleSelect, Option: &unknown,
	})
	require.ErrorIs(t, err, domain.ErrUnknownOption)

	// The rejected write did not clobber the stored value.
	values, err := repo.ListValues(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, "High", *values[0].Value.Option)
}

func TestCustomFieldRepository_SetValue_ReplacesExisting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)

	field := f.createSelectField(t, "High", "Low")
	task := f.createTask(t, "task", nil)

	for _, option := range []string{"High", "Low"} {
		value := option
		_, err := repo.SetValue(ctx, task.ID, field.ID, domain.FieldValue{
			Type: domain.FieldTypeSingleSelect, Option: &value,
		})
		require.NoError(t, err)
	}

	values, err := repo.ListValues(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, "Low", *values[0].Value.Option)
}

func TestCustomFieldRepository_ValueRoundTrips(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)
	task := f.createTask(t, "task", nil)

	number, err := repo.Create(ctx, domain.CreateCustomFieldInput{
		Name: "Estimate", Type: domain.FieldTypeNumber, ProjectID: f.Project.ID,
	})
	require.NoError(t, err)
	date, err := repo.Create(ctx, domain.CreateCustomFieldInput{
		Name: "Review on", Type: domain.FieldTypeDate, ProjectID: f.Project.ID,
	})
	require.NoError(t, err)
	boolean, err := repo.Create(ctx, domain.CreateCustomFieldInput{
		Name: "Billable", Type: domain.FieldTypeBoolean, ProjectID: f.Project.ID,
	})
	require.NoError(t, err)

	estimate := 2.5
	_, err = repo.SetValue(ctx, task.ID, number.ID, domain.FieldValue{
		Type: domain.FieldTypeNumber, Number: &estimate,
	})
	require.NoError(t, err)

	review := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err = repo.SetValue(ctx, task.ID, date.ID, domain.FieldValue{
		Type: domain.FieldTypeDate, Date: &review,
	})
	require.NoError(t, err)

	billable := true
	_, err = repo.SetValue(ctx, task.ID, boolean.ID, domain.FieldValue{
		Type: domain.FieldTypeBoolean, Boolean: &billable,
	})
	require.NoError(t, err)

	values, err := repo.ListValues(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, values, 3)

	byField := map[uint64]domain.TaskFieldValue{}
	for _, value := range values {
		byField[value.Field.ID] = value
	}
	require.Equal(t, 2.5, *byField[number.ID].Value.Number)
	require.True(t, review.Equal(*byField[date.ID].Value.Date))
	require.True(t, *byField[boolean.ID].Value.Boolean)
}

func TestCustomFieldRepository_ClearValue_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)

	field := f.createSelectField(t, "High")
	task := f.createTask(t, "task", nil)

	option := "High"
	_, err := repo.SetValue(ctx, task.ID, field.ID, domain.FieldValue{
		Type: domain.FieldTypeSingleSelect, Option: &option,
	})
	require.NoError(t, err)

	require.NoError(t, repo.ClearValue(ctx, task.ID, field.ID))
	require.NoError(t, repo.ClearValue(ctx, task.ID, field.ID))

	values, err := repo.ListValues(ctx, task.ID)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestCustomFieldRepository_Update_TypeChangeBlockedByValues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)

	field := f.createSelectField(t, "High")
	task := f.createTask(t, "task", nil)

	option := "High"
	_, err := repo.SetValue(ctx, task.ID, field.ID, domain.FieldValue{
		Type: domain.FieldTypeSingleSelect, Option: &option,
	})
	require.NoError(t, err)

	text := domain.FieldTypeText
	_, err = repo.Update(ctx, field.ID, domain.UpdateCustomFieldInput{Type: &text})
	require.ErrorIs(t, err, domain.ErrFieldHasValues)

	// Renaming is always allowed, even with stored values.
	name := "Severity"
	updated, err := repo.Update(ctx, field.ID, domain.UpdateCustomFieldInput{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Severity", updated.Name)
	require.Equal(t, domain.FieldTypeSingleSelect, updated.Type)

	// After clearing the value the type change goes through and the options
	// are dropped with it.
	require.NoError(t, repo.ClearValue(ctx, task.ID, field.ID))
	updated, err = repo.Update(ctx, field.ID, domain.UpdateCustomFieldInput{Type: &text})
	require.NoError(t, err)
	require.Equal(t, domain.FieldTypeText, updated.Type)
	require.Empty(t, updated.Options)

	var options int
	require.NoError(t, f.DB.Get(&options, "SELECT COUNT(*) FROM custom_field_options"))
	require.Zero(t, options)
}

func TestCustomFieldRepository_Update_TypeChangeToSelectRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)

	field, err := repo.Create(ctx, domain.CreateCustomFieldInput{
		Name: "Notes", Type: domain.FieldTypeText, ProjectID: f.Project.ID,
	})
	require.NoError(t, err)

	// Even with no stored values, a select field cannot come out of a type
	// change because the update carries no options to give it.
	selectType := domain.FieldTypeSingleSelect
	_, err = repo.Update(ctx, field.ID, domain.UpdateCustomFieldInput{Type: &selectType})
	require.ErrorIs(t, err, domain.ErrOptionsRequired)

	stored, err := repo.GetByID(ctx, field.ID)
	require.NoError(t, err)
	require.Equal(t, domain.FieldTypeText, stored.Type)
}

func TestCustomFieldRepository_AddOption_AppendsAtEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)

	field := f.createSelectField(t, "High", "Low")

	option, err := repo.AddOption(ctx, field.ID, domain.CreateFieldOptionInput{Value: "Medium"})
	require.NoError(t, err)
	require.Equal(t, 2, option.Position)

	got, err := repo.GetByID(ctx, field.ID)
	require.NoError(t, err)
	require.Len(t, got.Options, 3)
	require.Equal(t, "Medium", got.Options[2].Value)
}

func TestCustomFieldRepository_Delete_RemovesValuesAndOptions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewCustomFieldRepository(f.DB)

	field := f.createSelectField(t, "High")
	task := f.createTask(t, "task", nil)

	option := "High"
	_, err := repo.SetValue(ctx, task.ID, field.ID, domain.FieldValue{
		Type: domain.FieldTypeSingleSelect, Option: &option,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, field.ID))

	for _, query := range []string{
		"SELECT COUNT(*) FROM custom_fields",
		"SELECT COUNT(*) FROM custom_field_options",
		"SELECT COUNT(*) FROM task_custom_field_values",
	} {
		var count int
		require.NoError(t, f.DB.Get(&count, query))
		require.Zerof(t, count, "query %q", query)
	}

	require.ErrorIs(t, repo.Delete(ctx, field.ID), domain.ErrFieldNotFound)
}
