package db

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/goer/asana-clone/internal/core/domain"
)

// testSchema mirrors db/migrations in SQLite dialect so the repository tests
// run hermetically in memory.
const testSchema = `
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE workspaces (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    owner_id INTEGER NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE user_workspaces (
    user_id INTEGER NOT NULL,
    workspace_id INTEGER NOT NULL,
    PRIMARY KEY (user_id, workspace_id)
);

CREATE TABLE teams (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    workspace_id INTEGER NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE user_teams (
    user_id INTEGER NOT NULL,
    team_id INTEGER NOT NULL,
    PRIMARY KEY (user_id, team_id)
);

CREATE TABLE projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    workspace_id INTEGER NOT NULL,
    team_id INTEGER,
    owner_id INTEGER NOT NULL,
    is_public INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE sections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    project_id INTEGER NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL
);

CREATE TABLE tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    project_id INTEGER NOT NULL,
    section_id INTEGER,
    parent_task_id INTEGER REFERENCES tasks (id),
    assignee_id INTEGER,
    creator_id INTEGER NOT NULL,
    due_date DATETIME,
    completed_at DATETIME,
    position INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    color TEXT,
    workspace_id INTEGER NOT NULL,
    created_at DATETIME NOT NULL,
    UNIQUE (name, workspace_id)
);

CREATE TABLE task_tags (
    task_id INTEGER NOT NULL,
    tag_id INTEGER NOT NULL,
    PRIMARY KEY (task_id, tag_id)
);

CREATE TABLE custom_fields (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    project_id INTEGER NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE TABLE custom_field_options (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    custom_field_id INTEGER NOT NULL,
    value TEXT NOT NULL,
    color TEXT,
    position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE task_custom_field_values (
    task_id INTEGER NOT NULL,
    custom_field_id INTEGER NOT NULL,
    value_text TEXT,
    value_number REAL,
    value_date DATETIME,
    value_boolean INTEGER,
    value_option_id INTEGER,
    PRIMARY KEY (task_id, custom_field_id)
);

CREATE TABLE comments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    content TEXT NOT NULL,
    task_id INTEGER NOT NULL,
    author_id INTEGER NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE attachments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    reference TEXT NOT NULL,
    task_id INTEGER,
    comment_id INTEGER,
    uploader_id INTEGER NOT NULL,
    created_at DATETIME NOT NULL
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// One connection so every statement sees the same in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

// fixture seeds the minimal containment chain most repository tests need:
// one user owning one workspace with one project.
type fixture struct {
	DB        *sqlx.DB
	User      domain.User
	Workspace domain.Workspace
	Project   domain.Project
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	user, err := NewUserRepository(db).Create(ctx, domain.RegisterUserInput{
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	workspace, err := NewWorkspaceRepository(db).Create(ctx, domain.CreateWorkspaceInput{
		Name:    "Acme",
		OwnerID: user.ID,
	})
	require.NoError(t, err)

	project, err := NewProjectRepository(db).Create(ctx, domain.CreateProjectInput{
		Name:        "Launch",
		WorkspaceID: workspace.ID,
		OwnerID:     user.ID,
	})
	require.NoError(t, err)

	return fixture{DB: db, User: user, Workspace: workspace, Project: project}
}

func (f fixture) createTask(t *testing.T, name string, parentID *uint64) domain.Task {
	t.Helper()
	task, err := NewTaskRepository(f.DB).Create(context.Background(), domain.CreateTaskInput{
		Name:         name,
		ProjectID:    f.Project.ID,
		ParentTaskID: parentID,
		CreatorID:    f.User.ID,
	})
	require.NoError(t, err)
	return task
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}
