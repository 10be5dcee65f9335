package mapper

import (
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func ToTeamItems(teams []domain.Team) []dto.TeamItem {
	items := make([]dto.TeamItem, 0, len(teams))
	for _, team := range teams {
		items = append(items, ToTeamItem(team))
	}
	return items
}

func ToTeamItem(team domain.Team) dto.TeamItem {
	item := dto.TeamItem{
		ID:          team.ID,
		Name:        team.Name,
		WorkspaceID: team.WorkspaceID,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
	}

	if team.Description != nil {
		value := *team.Description
		item.Description = &value
	}

	return item
}
