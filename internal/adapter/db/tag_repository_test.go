package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goer/asana-clone/internal/core/domain"
)

func TestTagRepository_Create_DuplicateNameInWorkspace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewTagRepository(f.DB)

	_, err := repo.Create(ctx, domain.CreateTagInput{Name: "urgent", WorkspaceID: f.Workspace.ID})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.CreateTagInput{Name: "urgent", WorkspaceID: f.Workspace.ID})
	require.ErrorIs(t, err, domain.ErrTagNameTaken)

	// The same name in another workspace is fine.
	other, err := NewWorkspaceRepository(f.DB).Create(ctx, domain.CreateWorkspaceInput{
		Name: "Other", OwnerID: f.User.ID,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.CreateTagInput{Name: "urgent", WorkspaceID: other.ID})
	require.NoError(t, err)
}

func TestTagRepository_Update_RenameOntoExistingName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewTagRepository(f.DB)

	_, err := repo.Create(ctx, domain.CreateTagInput{Name: "urgent", WorkspaceID: f.Workspace.ID})
	require.NoError(t, err)
	second, err := repo.Create(ctx, domain.CreateTagInput{Name: "later", WorkspaceID: f.Workspace.ID})
	require.NoError(t, err)

	name := "urgent"
	_, err = repo.Update(ctx, second.ID, domain.UpdateTagInput{Name: &name})
	require.ErrorIs(t, err, domain.ErrTagNameTaken)
}

func TestTagRepository_Update_ClearsColor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewTagRepository(f.DB)

	color := "red"
	tag, err := repo.Create(ctx, domain.CreateTagInput{
		Name: "urgent", Color: &color, WorkspaceID: f.Workspace.ID,
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, tag.ID, domain.UpdateTagInput{ColorSet: true})
	require.NoError(t, err)
	require.Nil(t, updated.Color)

	stored, err := repo.GetByID(ctx, tag.ID)
	require.NoError(t, err)
	require.Nil(t, stored.Color)
	require.Equal(t, "urgent", stored.Name)
}

func TestTagRepository_AttachDetach_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewTagRepository(f.DB)

	task := f.createTask(t, "task", nil)
	tag, err := repo.Create(ctx, domain.CreateTagInput{Name: "urgent", WorkspaceID: f.Workspace.ID})
	require.NoError(t, err)

	require.NoError(t, repo.Attach(ctx, task.ID, tag.ID))
	require.NoError(t, repo.Attach(ctx, task.ID, tag.ID))

	tags, err := repo.ListForTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, tag.ID, tags[0].ID)

	require.NoError(t, repo.Detach(ctx, task.ID, tag.ID))
	require.NoError(t, repo.Detach(ctx, task.ID, tag.ID))

	tags, err = repo.ListForTask(ctx, task.ID)
	require.NoError(t, err)
	require.Empty(t, tags)
}

func TestTagRepository_Delete_RemovesLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewTagRepository(f.DB)

	task := f.createTask(t, "task", nil)
	tag, err := repo.Create(ctx, domain.CreateTagInput{Name: "urgent", WorkspaceID: f.Workspace.ID})
	require.NoError(t, err)
	require.NoError(t, repo.Attach(ctx, task.ID, tag.ID))

	require.NoError(t, repo.Delete(ctx, tag.ID))

	var links int
	require.NoError(t, f.DB.Get(&links, "SELECT COUNT(*) FROM task_tags"))
	require.Zero(t, links)

	// The task itself is untouched.
	_, err = NewTaskRepository(f.DB).GetByID(ctx, task.ID)
	require.NoError(t, err)

	require.ErrorIs(t, repo.Delete(ctx, tag.ID), domain.ErrTagNotFound)
}
