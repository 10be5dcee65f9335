package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	WorkspaceID uint64         `db:"workspace_id"`
	TeamID      sql.NullInt64  `db:"team_id"`
	OwnerID     uint64         `db:"owner_id"`
	IsPublic    bool           `db:"is_public"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO projects (name, description, workspace_id, team_id, owner_id, is_public, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Description, in.WorkspaceID, in.TeamID, in.OwnerID, in.IsPublic, now, now,
	)
	if err != nil {
		return domain.Project{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}

	return domain.Project{
		ID:          uint64(id),
		Name:        in.Name,
		Description: in.Description,
		WorkspaceID: in.WorkspaceID,
		TeamID:      in.TeamID,
		OwnerID:     in.OwnerID,
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM projects WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) ListByWorkspace(ctx context.Context, workspaceID uint64) ([]domain.Project, error) {
	var rows []projectRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM projects WHERE workspace_id = ? ORDER BY id`, workspaceID)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id uint64, in domain.UpdateProjectInput) (domain.Project, error) {
	var updated domain.Project

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row projectRow
		err := tx.Get(&row, `SELECT * FROM projects WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProjectNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil {
			row.Name = *in.Name
		}
		if in.DescriptionSet {
			row.Description = toNullString(in.Description)
		}
		if in.TeamIDSet {
			row.TeamID = toNullInt64(in.TeamID)
		}
		if in.IsPublic != nil {
			row.IsPublic = *in.IsPublic
		}
		row.UpdatedAt = nowUTC()

		_, err = tx.Exec(`
UPDATE projects SET name = ?, description = ?, team_id = ?, is_public = ?, updated_at = ?
WHERE id = ?`,
			row.Name, row.Description, row.TeamID, row.IsPublic, row.UpdatedAt, id,
		)
		if err != nil {
			return err
		}

		updated = mapProjectRowToDomainProject(row)
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return updated, nil
}

// Delete clears the project subtree: tasks with their child rows, custom
// fields with options, sections, then the project row itself.
func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		roots, err := selectIDs(tx,
			`SELECT id FROM tasks WHERE project_id = ? AND parent_task_id IS NULL`, id)
		if err != nil {
			return err
		}
		// Subtask chains never leave their project, so the forest under the
		// top-level tasks covers every task row.
		levels, err := collectTaskLevels(tx, roots)
		if err != nil {
			return err
		}
		if err := deleteTaskChildRows(tx, flattenLevels(levels)); err != nil {
			return err
		}
		if err := deleteTasksBottomUp(tx, levels); err != nil {
			return err
		}

		fieldIDs, err := selectIDs(tx, `SELECT id FROM custom_fields WHERE project_id = ?`, id)
		if err != nil {
			return err
		}
		if err := deleteIn(tx, `DELETE FROM custom_field_options WHERE custom_field_id IN (?)`, fieldIDs); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM custom_fields WHERE project_id = ?`, id); err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM sections WHERE project_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.Exec(`DELETE FROM projects WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrProjectNotFound
		}
		return nil
	})
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:          row.ID,
		Name:        row.Name,
		WorkspaceID: row.WorkspaceID,
		OwnerID:     row.OwnerID,
		IsPublic:    row.IsPublic,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	if row.TeamID.Valid {
		value := uint64(row.TeamID.Int64)
		project.TeamID = &value
	}

	return project
}

func toNullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func toNullInt64(p *uint64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}
