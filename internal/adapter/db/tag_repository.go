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

type TagRepository struct {
	db *sqlx.DB
}

type tagRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Color       sql.NullString `db:"color"`
	WorkspaceID uint64         `db:"workspace_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

var _ ports.TagRepository = (*TagRepository)(nil)

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, in domain.CreateTagInput) (domain.Tag, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (name, color, workspace_id, created_at) VALUES (?, ?, ?, ?)`,
		in.Name, in.Color, in.WorkspaceID, now,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.Tag{}, domain.ErrTagNameTaken
		}
		return domain.Tag{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Tag{}, err
	}

	return domain.Tag{
		ID:          uint64(id),
		Name:        in.Name,
		Color:       in.Color,
		WorkspaceID: in.WorkspaceID,
		CreatedAt:   now,
	}, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id uint64) (domain.Tag, error) {
	var row tagRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM tags WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Tag{}, domain.ErrTagNotFound
	}
	if err != nil {
		return domain.Tag{}, err
	}
	return mapTagRowToDomainTag(row), nil
}

func (r *TagRepository) ListByWorkspace(ctx context.Context, workspaceID uint64) ([]domain.Tag, error) {
	var rows []tagRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM tags WHERE workspace_id = ? ORDER BY id`, workspaceID)
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, mapTagRowToDomainTag(row))
	}
	return tags, nil
}

// Update rewrites name and color. The (name, workspace) unique index catches
// renames onto an existing tag just as it does on insert.
func (r *TagRepository) Update(ctx context.Context, id uint64, in domain.UpdateTagInput) (domain.Tag, error) {
	var updated domain.Tag

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row tagRow
		err := tx.Get(&row, `SELECT * FROM tags WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTagNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil {
			row.Name = *in.Name
		}
		if in.ColorSet {
			row.Color = sql.NullString{}
			if in.Color != nil {
				row.Color = sql.NullString{String: *in.Color, Valid: true}
			}
		}

		if _, err := tx.Exec(`UPDATE tags SET name = ?, color = ? WHERE id = ?`,
			row.Name, row.Color, id); err != nil {
			if isDuplicateKey(err) {
				return domain.ErrTagNameTaken
			}
			return err
		}

		updated = mapTagRowToDomainTag(row)
		return nil
	})
	if err != nil {
		return domain.Tag{}, err
	}
	return updated, nil
}

func (r *TagRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`DELETE FROM task_tags WHERE tag_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.Exec(`DELETE FROM tags WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrTagNotFound
		}
		return nil
	})
}

// Attach is idempotent: an already attached pair is left alone and reported
// as success, racing inserts collapse onto the primary key.
func (r *TagRepository) Attach(ctx context.Context, taskID, tagID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)`,
		taskID, tagID,
	)
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

// Detach is idempotent: removing an absent link is a no-op.
func (r *TagRepository) Detach(ctx context.Context, taskID, tagID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM task_tags WHERE task_id = ? AND tag_id = ?`,
		taskID, tagID,
	)
	return err
}

func (r *TagRepository) ListForTask(ctx context.Context, taskID uint64) ([]domain.Tag, error) {
	var rows []tagRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT tg.*
FROM tags tg
JOIN task_tags tt ON tt.tag_id = tg.id
WHERE tt.task_id = ?
ORDER BY tg.id`, taskID)
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, mapTagRowToDomainTag(row))
	}
	return tags, nil
}

func mapTagRowToDomainTag(row tagRow) domain.Tag {
	tag := domain.Tag{
		ID:          row.ID,
		Name:        row.Name,
		WorkspaceID: row.WorkspaceID,
		CreatedAt:   row.CreatedAt,
	}

	if row.Color.Valid {
		value := row.Color.String
		tag.Color = &value
	}

	return tag
}
