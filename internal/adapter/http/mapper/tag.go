package mapper

import (
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func ToTagItems(tags []domain.Tag) []dto.TagItem {
	items := make([]dto.TagItem, 0, len(tags))
	for _, tag := range tags {
		items = append(items, ToTagItem(tag))
	}
	return items
}

func ToTagItem(tag domain.Tag) dto.TagItem {
	item := dto.TagItem{
		ID:          tag.ID,
		Name:        tag.Name,
		WorkspaceID: tag.WorkspaceID,
		CreatedAt:   tag.CreatedAt.Format(time.RFC3339),
	}

	if tag.Color != nil {
		value := *tag.Color
		item.Color = &value
	}

	return item
}
