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

type WorkspaceRepository struct {
	db *sqlx.DB
}

type workspaceRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	OwnerID   uint64    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.WorkspaceRepository = (*WorkspaceRepository)(nil)

func NewWorkspaceRepository(db *sqlx.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func (r *WorkspaceRepository) Create(ctx context.Context, in domain.CreateWorkspaceInput) (domain.Workspace, error) {
	now := nowUTC()
	var id uint64

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO workspaces (name, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			in.Name, in.OwnerID, now, now,
		)
		if err != nil {
			return err
		}
		lastID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		id = uint64(lastID)

		_, err = tx.Exec(
			`INSERT INTO user_workspaces (user_id, workspace_id) VALUES (?, ?)`,
			in.OwnerID, id,
		)
		return err
	})
	if err != nil {
		return domain.Workspace{}, err
	}

	return domain.Workspace{
		ID:        id,
		Name:      in.Name,
		OwnerID:   in.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id uint64) (domain.Workspace, error) {
	var row workspaceRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM workspaces WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Workspace{}, domain.ErrWorkspaceNotFound
	}
	if err != nil {
		return domain.Workspace{}, err
	}
	return mapWorkspaceRowToDomainWorkspace(row), nil
}

func (r *WorkspaceRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.Workspace, error) {
	var rows []workspaceRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT w.*
FROM workspaces w
JOIN user_workspaces uw ON uw.workspace_id = w.id
WHERE uw.user_id = ?
ORDER BY w.id`, userID)
	if err != nil {
		return nil, err
	}

	workspaces := make([]domain.Workspace, 0, len(rows))
	for _, row := range rows {
		workspaces = append(workspaces, mapWorkspaceRowToDomainWorkspace(row))
	}
	return workspaces, nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, id uint64, in domain.UpdateWorkspaceInput) (domain.Workspace, error) {
	var updated domain.Workspace

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row workspaceRow
		err := tx.Get(&row, `SELECT * FROM workspaces WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrWorkspaceNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil {
			row.Name = *in.Name
		}
		row.UpdatedAt = nowUTC()

		_, err = tx.Exec(
			`UPDATE workspaces SET name = ?, updated_at = ? WHERE id = ?`,
			row.Name, row.UpdatedAt, id,
		)
		if err != nil {
			return err
		}

		updated = mapWorkspaceRowToDomainWorkspace(row)
		return nil
	})
	if err != nil {
		return domain.Workspace{}, err
	}
	return updated, nil
}

// Delete tears the whole workspace down, leaf tables first so every foreign
// key stays satisfied at each step.
func (r *WorkspaceRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var projectIDs []uint64
		if err := tx.Select(&projectIDs, `SELECT id FROM projects WHERE workspace_id = ?`, id); err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			roots, err := collectIDs(tx,
				`SELECT id FROM tasks WHERE project_id IN (?) AND parent_task_id IS NULL`, projectIDs)
			if err != nil {
				return err
			}
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

			fieldIDs, err := collectIDs(tx, `SELECT id FROM custom_fields WHERE project_id IN (?)`, projectIDs)
			if err != nil {
				return err
			}
			if err := deleteIn(tx, `DELETE FROM custom_field_options WHERE custom_field_id IN (?)`, fieldIDs); err != nil {
				return err
			}
			if err := deleteIn(tx, `DELETE FROM custom_fields WHERE project_id IN (?)`, projectIDs); err != nil {
				return err
			}

			if err := deleteIn(tx, `DELETE FROM sections WHERE project_id IN (?)`, projectIDs); err != nil {
				return err
			}
			if err := deleteIn(tx, `DELETE FROM projects WHERE id IN (?)`, projectIDs); err != nil {
				return err
			}
		}

		teamIDs, err := selectIDs(tx, `SELECT id FROM teams WHERE workspace_id = ?`, id)
		if err != nil {
			return err
		}
		if err := deleteIn(tx, `DELETE FROM user_teams WHERE team_id IN (?)`, teamIDs); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM teams WHERE workspace_id = ?`, id); err != nil {
			return err
		}

		tagIDs, err := selectIDs(tx, `SELECT id FROM tags WHERE workspace_id = ?`, id)
		if err != nil {
			return err
		}
		if err := deleteIn(tx, `DELETE FROM task_tags WHERE tag_id IN (?)`, tagIDs); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM tags WHERE workspace_id = ?`, id); err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM user_workspaces WHERE workspace_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.Exec(`DELETE FROM workspaces WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrWorkspaceNotFound
		}
		return nil
	})
}

func (r *WorkspaceRepository) AddMember(ctx context.Context, workspaceID, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_workspaces (user_id, workspace_id) VALUES (?, ?)`,
		userID, workspaceID,
	)
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

func (r *WorkspaceRepository) ListMembers(ctx context.Context, workspaceID uint64) ([]domain.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT u.*
FROM users u
JOIN user_workspaces uw ON uw.user_id = u.id
WHERE uw.workspace_id = ?
ORDER BY u.id`, workspaceID)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *WorkspaceRepository) IsMember(ctx context.Context, workspaceID, userID uint64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_workspaces WHERE workspace_id = ? AND user_id = ?`,
		workspaceID, userID,
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapWorkspaceRowToDomainWorkspace(row workspaceRow) domain.Workspace {
	return domain.Workspace{
		ID:        row.ID,
		Name:      row.Name,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
