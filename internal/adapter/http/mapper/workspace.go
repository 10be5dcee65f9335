package mapper

import (
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func ToWorkspaceItems(workspaces []domain.Workspace) []dto.WorkspaceItem {
	items := make([]dto.WorkspaceItem, 0, len(workspaces))
	for _, workspace := range workspaces {
		items = append(items, ToWorkspaceItem(workspace))
	}
	return items
}

func ToWorkspaceItem(workspace domain.Workspace) dto.WorkspaceItem {
	return dto.WorkspaceItem{
		ID:        workspace.ID,
		Name:      workspace.Name,
		OwnerID:   workspace.OwnerID,
		CreatedAt: workspace.CreatedAt.Format(time.RFC3339),
		UpdatedAt: workspace.UpdatedAt.Format(time.RFC3339),
	}
}
