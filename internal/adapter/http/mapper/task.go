package mapper

import (
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Name:      task.Name,
		ProjectID: task.ProjectID,
		CreatorID: task.CreatorID,
		Completed: task.Completed(),
		Position:  task.Position,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.SectionID != nil {
		value := *task.SectionID
		item.SectionID = &value
	}

	if task.ParentTaskID != nil {
		value := *task.ParentTaskID
		item.ParentTaskID = &value
	}

	if task.AssigneeID != nil {
		value := *task.AssigneeID
		item.AssigneeID = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	return item
}

func ToTaskPageResponse(page domain.TaskPage) dto.TaskPageResponse {
	return dto.TaskPageResponse{
		Tasks:  ToTaskItems(page.Tasks),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
