package service

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

// requireWorkspaceMember is the shared gate in front of every workspace
// scoped operation. Non-members get Forbidden regardless of what they asked
// for.
func requireWorkspaceMember(ctx context.Context, workspaces ports.WorkspaceRepository, workspaceID, userID uint64) error {
	ok, err := workspaces.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
