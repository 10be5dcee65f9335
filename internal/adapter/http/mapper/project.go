package mapper

import (
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:          project.ID,
		Name:        project.Name,
		WorkspaceID: project.WorkspaceID,
		OwnerID:     project.OwnerID,
		IsPublic:    project.IsPublic,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	if project.TeamID != nil {
		value := *project.TeamID
		item.TeamID = &value
	}

	return item
}

func ToSectionItems(sections []domain.Section) []dto.SectionItem {
	items := make([]dto.SectionItem, 0, len(sections))
	for _, section := range sections {
		items = append(items, ToSectionItem(section))
	}
	return items
}

func ToSectionItem(section domain.Section) dto.SectionItem {
	return dto.SectionItem{
		ID:        section.ID,
		Name:      section.Name,
		ProjectID: section.ProjectID,
		Position:  section.Position,
		CreatedAt: section.CreatedAt.Format(time.RFC3339),
	}
}
