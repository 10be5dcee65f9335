package mapper

import (
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func ToCustomFieldItems(fields []domain.CustomField) []dto.CustomFieldItem {
	items := make([]dto.CustomFieldItem, 0, len(fields))
	for _, field := range fields {
		items = append(items, ToCustomFieldItem(field))
	}
	return items
}

func ToCustomFieldItem(field domain.CustomField) dto.CustomFieldItem {
	item := dto.CustomFieldItem{
		ID:        field.ID,
		Name:      field.Name,
		Type:      string(field.Type),
		ProjectID: field.ProjectID,
		CreatedAt: field.CreatedAt.Format(time.RFC3339),
	}

	for _, option := range field.Options {
		item.Options = append(item.Options, ToFieldOptionItem(option))
	}

	return item
}

func ToFieldOptionItem(option domain.FieldOption) dto.FieldOptionItem {
	item := dto.FieldOptionItem{
		ID:       option.ID,
		Value:    option.Value,
		Position: option.Position,
	}

	if option.Color != nil {
		value := *option.Color
		item.Color = &value
	}

	return item
}

func ToFieldValueItems(values []domain.TaskFieldValue) []dto.FieldValueItem {
	items := make([]dto.FieldValueItem, 0, len(values))
	for _, value := range values {
		items = append(items, ToFieldValueItem(value))
	}
	return items
}

// ToFieldValueItem renders the stored value in the wire shape matching the
// field type: strings for text and select, numbers, booleans, and calendar
// dates as YYYY-MM-DD.
func ToFieldValueItem(value domain.TaskFieldValue) dto.FieldValueItem {
	return dto.FieldValueItem{
		Field: ToCustomFieldItem(value.Field),
		Value: fieldValuePayload(value.Value),
	}
}

func fieldValuePayload(v domain.FieldValue) any {
	switch v.Type {
	case domain.FieldTypeText:
		if v.Text != nil {
			return *v.Text
		}
	case domain.FieldTypeNumber:
		if v.Number != nil {
			return *v.Number
		}
	case domain.FieldTypeDate:
		if v.Date != nil {
			return v.Date.Format("2006-01-02")
		}
	case domain.FieldTypeBoolean:
		if v.Boolean != nil {
			return *v.Boolean
		}
	case domain.FieldTypeSingleSelect:
		if v.Option != nil {
			return *v.Option
		}
	}
	return nil
}
