package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	if hasJSONField(raw, "position") && req.Position == nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidPayload
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Name:         name,
		Description:  req.Description,
		ProjectID:    req.ProjectID,
		SectionID:    req.SectionID,
		ParentTaskID: req.ParentTaskID,
		AssigneeID:   req.AssigneeID,
		DueDate:      dueDate,
		Position:     position,
	}, nil
}

// BuildUpdateTaskInput turns a PATCH body into a change set. A key present
// with a null value clears the field; an absent key leaves it alone. The raw
// map is what tells those two apart after binding.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	sectionIDSet := hasJSONField(raw, "section_id")
	if sectionIDSet && !isJSONNull(raw["section_id"]) && req.SectionID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	parentTaskIDSet := hasJSONField(raw, "parent_task_id")
	if parentTaskIDSet && !isJSONNull(raw["parent_task_id"]) && req.ParentTaskID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	assigneeIDSet := hasJSONField(raw, "assignee_id")
	if assigneeIDSet && !isJSONNull(raw["assignee_id"]) && req.AssigneeID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		dueDate = &parsed
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}
	if hasJSONField(raw, "position") && req.Position == nil {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	return domain.UpdateTaskInput{
		Name:            name,
		Description:     req.Description,
		DescriptionSet:  descriptionSet,
		SectionID:       req.SectionID,
		SectionIDSet:    sectionIDSet,
		ParentTaskID:    req.ParentTaskID,
		ParentTaskIDSet: parentTaskIDSet,
		AssigneeID:      req.AssigneeID,
		AssigneeIDSet:   assigneeIDSet,
		DueDate:         dueDate,
		DueDateSet:      dueDateSet,
		Completed:       req.Completed,
		Position:        req.Position,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "section_id") ||
		hasJSONField(raw, "parent_task_id") ||
		hasJSONField(raw, "assignee_id") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "completed") ||
		hasJSONField(raw, "position")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
