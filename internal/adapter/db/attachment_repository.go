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

type AttachmentRepository struct {
	db *sqlx.DB
}

type attachmentRow struct {
	ID         uint64        `db:"id"`
	Filename   string        `db:"filename"`
	Reference  string        `db:"reference"`
	TaskID     sql.NullInt64 `db:"task_id"`
	CommentID  sql.NullInt64 `db:"comment_id"`
	UploaderID uint64        `db:"uploader_id"`
	CreatedAt  time.Time     `db:"created_at"`
}

var _ ports.AttachmentRepository = (*AttachmentRepository)(nil)

func NewAttachmentRepository(db *sqlx.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, in domain.CreateAttachmentInput) (domain.Attachment, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, `
INSERT INTO attachments (filename, reference, task_id, comment_id, uploader_id, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		in.Filename, in.Reference, in.TaskID, in.CommentID, in.UploaderID, now,
	)
	if err != nil {
		return domain.Attachment{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Attachment{}, err
	}

	return domain.Attachment{
		ID:         uint64(id),
		Filename:   in.Filename,
		Reference:  in.Reference,
		TaskID:     in.TaskID,
		CommentID:  in.CommentID,
		UploaderID: in.UploaderID,
		CreatedAt:  now,
	}, nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint64) (domain.Attachment, error) {
	var row attachmentRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM attachments WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Attachment{}, domain.ErrAttachmentNotFound
	}
	if err != nil {
		return domain.Attachment{}, err
	}
	return mapAttachmentRowToDomainAttachment(row), nil
}

func (r *AttachmentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Attachment, error) {
	var rows []attachmentRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM attachments WHERE task_id = ? ORDER BY id`, taskID)
	if err != nil {
		return nil, err
	}
	return mapAttachmentRows(rows), nil
}

func (r *AttachmentRepository) ListByComment(ctx context.Context, commentID uint64) ([]domain.Attachment, error) {
	var rows []attachmentRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM attachments WHERE comment_id = ? ORDER BY id`, commentID)
	if err != nil {
		return nil, err
	}
	return mapAttachmentRows(rows), nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}

func mapAttachmentRows(rows []attachmentRow) []domain.Attachment {
	attachments := make([]domain.Attachment, 0, len(rows))
	for _, row := range rows {
		attachments = append(attachments, mapAttachmentRowToDomainAttachment(row))
	}
	return attachments
}

func mapAttachmentRowToDomainAttachment(row attachmentRow) domain.Attachment {
	attachment := domain.Attachment{
		ID:         row.ID,
		Filename:   row.Filename,
		Reference:  row.Reference,
		UploaderID: row.UploaderID,
		CreatedAt:  row.CreatedAt,
	}

	if row.TaskID.Valid {
		value := uint64(row.TaskID.Int64)
		attachment.TaskID = &value
	}

	if row.CommentID.Valid {
		value := uint64(row.CommentID.Int64)
		attachment.CommentID = &value
	}

	return attachment
}
