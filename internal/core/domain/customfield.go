package domain

import (
	"fmt"
	"strings"
	"time"
)

type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeNumber       FieldType = "number"
	FieldTypeDate         FieldType = "date"
	FieldTypeBoolean      FieldType = "boolean"
	FieldTypeSingleSelect FieldType = "single_select"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean, FieldTypeSingleSelect:
		return true
	}
	return false
}

// CustomField is a project-scoped attribute definition. Options is populated
// only for single select fields.
type CustomField struct {
	ID        uint64
	Name      string
	Type      FieldType
	ProjectID uint64
	CreatedAt time.Time
	Options   []FieldOption
}

type FieldOption struct {
	ID            uint64
	CustomFieldID uint64
	Value         string
	Color         *string
	Position      int
}

type CreateCustomFieldInput struct {
	Name      string
	Type      FieldType
	ProjectID uint64
	Options   []CreateFieldOptionInput
}

type CreateFieldOptionInput struct {
	Value string
	Color *string
}

type UpdateCustomFieldInput struct {
	Name *string
	Type *FieldType
}

// FieldValue is the tagged union a task stores per field. Exactly the slot
// matching Type is non-nil; for single select fields Option holds the
// option's value string and OptionID its row id.
type FieldValue struct {
	Type     FieldType
	Text     *string
	Number   *float64
	Date     *time.Time
	Boolean  *bool
	Option   *string
	OptionID *uint64
}

// TaskFieldValue pairs a stored value with the field it belongs to, the shape
// the list endpoint returns.
type TaskFieldValue struct {
	Field CustomField
	Value FieldValue
}

// ParseFieldValue interprets a raw payload against the field's declared type.
// Dispatch is on the declared type alone; a payload that does not fit yields
// ErrValueTypeMismatch and nothing else. Dates accept either bare dates or
// RFC 3339 timestamps.
func ParseFieldValue(fieldType FieldType, raw any) (FieldValue, error) {
	v := FieldValue{Type: fieldType}
	switch fieldType {
	case FieldTypeText:
		s, ok := raw.(string)
		if !ok {
			return FieldValue{}, fmt.Errorf("text field wants a string: %w", ErrValueTypeMismatch)
		}
		v.Text = &s
	case FieldTypeNumber:
		switch n := raw.(type) {
		case float64:
			v.Number = &n
		case int:
			f := float64(n)
			v.Number = &f
		case int64:
			f := float64(n)
			v.Number = &f
		default:
			return FieldValue{}, fmt.Errorf("number field wants a number: %w", ErrValueTypeMismatch)
		}
	case FieldTypeDate:
		s, ok := raw.(string)
		if !ok {
			return FieldValue{}, fmt.Errorf("date field wants a date string: %w", ErrValueTypeMismatch)
		}
		t, err := parseDate(s)
		if err != nil {
			return FieldValue{}, fmt.Errorf("date field wants YYYY-MM-DD or RFC 3339: %w", ErrValueTypeMismatch)
		}
		v.Date = &t
	case FieldTypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return FieldValue{}, fmt.Errorf("boolean field wants true or false: %w", ErrValueTypeMismatch)
		}
		v.Boolean = &b
	case FieldTypeSingleSelect:
		s, ok := raw.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return FieldValue{}, fmt.Errorf("single select field wants an option value: %w", ErrValueTypeMismatch)
		}
		v.Option = &s
	default:
		return FieldValue{}, fmt.Errorf("unknown field type %q: %w", fieldType, ErrInvalidInput)
	}
	return v, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
