package dto

type CustomFieldItem struct {
	ID        uint64            `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	ProjectID uint64            `json:"project_id"`
	CreatedAt string            `json:"created_at"`
	Options   []FieldOptionItem `json:"options,omitempty"`
}

type FieldOptionItem struct {
	ID       uint64  `json:"id"`
	Value    string  `json:"value"`
	Color    *string `json:"color,omitempty"`
	Position int     `json:"position"`
}

type CreateCustomFieldRequest struct {
	Name    string               `json:"name" binding:"required,max=255"`
	Type    string               `json:"type" binding:"required,oneof=text number date boolean single_select"`
	Options []FieldOptionRequest `json:"options" binding:"omitempty,dive"`
}

type FieldOptionRequest struct {
	Value string  `json:"value" binding:"required,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

type UpdateCustomFieldRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Type *string `json:"type" binding:"omitempty,oneof=text number date boolean single_select"`
}

// SetFieldValueRequest leaves the payload untyped on purpose; how it is read
// depends on the field's declared type, not on the JSON shape.
type SetFieldValueRequest struct {
	Value any `json:"value"`
}

type FieldValueItem struct {
	Field CustomFieldItem `json:"field"`
	Value any             `json:"value"`
}
