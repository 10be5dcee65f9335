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

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uint64    `db:"id"`
	Content   string    `db:"content"`
	TaskID    uint64    `db:"task_id"`
	AuthorID  uint64    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, in domain.CreateCommentInput) (domain.Comment, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (content, task_id, author_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		in.Text, in.TaskID, in.AuthorID, now, now,
	)
	if err != nil {
		return domain.Comment{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, err
	}

	return domain.Comment{
		ID:        uint64(id),
		Text:      in.Text,
		TaskID:    in.TaskID,
		AuthorID:  in.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint64) (domain.Comment, error) {
	var row commentRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM comments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return mapCommentRowToDomainComment(row), nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	var rows []commentRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM comments WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRowToDomainComment(row))
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, id uint64, text string) (domain.Comment, error) {
	var updated domain.Comment

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row commentRow
		err := tx.Get(&row, `SELECT * FROM comments WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCommentNotFound
		}
		if err != nil {
			return err
		}

		row.Content = text
		row.UpdatedAt = nowUTC()

		_, err = tx.Exec(`UPDATE comments SET content = ?, updated_at = ? WHERE id = ?`,
			row.Content, row.UpdatedAt, id)
		if err != nil {
			return err
		}

		updated = mapCommentRowToDomainComment(row)
		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return updated, nil
}

// Delete takes the comment's attachments with it.
func (r *CommentRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`DELETE FROM attachments WHERE comment_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.Exec(`DELETE FROM comments WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrCommentNotFound
		}
		return nil
	})
}

func mapCommentRowToDomainComment(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		Text:      row.Content,
		TaskID:    row.TaskID,
		AuthorID:  row.AuthorID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
