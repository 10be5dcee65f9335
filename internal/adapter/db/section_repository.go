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

type SectionRepository struct {
	db *sqlx.DB
}

type sectionRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	ProjectID uint64    `db:"project_id"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.SectionRepository = (*SectionRepository)(nil)

func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) Create(ctx context.Context, in domain.CreateSectionInput) (domain.Section, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sections (name, project_id, position, created_at) VALUES (?, ?, ?, ?)`,
		in.Name, in.ProjectID, in.Position, now,
	)
	if err != nil {
		return domain.Section{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Section{}, err
	}

	return domain.Section{
		ID:        uint64(id),
		Name:      in.Name,
		ProjectID: in.ProjectID,
		Position:  in.Position,
		CreatedAt: now,
	}, nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id uint64) (domain.Section, error) {
	var row sectionRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM sections WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Section{}, domain.ErrSectionNotFound
	}
	if err != nil {
		return domain.Section{}, err
	}
	return mapSectionRowToDomainSection(row), nil
}

func (r *SectionRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.Section, error) {
	var rows []sectionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM sections WHERE project_id = ? ORDER BY position, id`, projectID)
	if err != nil {
		return nil, err
	}

	sections := make([]domain.Section, 0, len(rows))
	for _, row := range rows {
		sections = append(sections, mapSectionRowToDomainSection(row))
	}
	return sections, nil
}

func (r *SectionRepository) Update(ctx context.Context, id uint64, in domain.UpdateSectionInput) (domain.Section, error) {
	var updated domain.Section

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row sectionRow
		err := tx.Get(&row, `SELECT * FROM sections WHERE id = ?`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSectionNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil {
			row.Name = *in.Name
		}
		if in.Position != nil {
			row.Position = *in.Position
		}

		_, err = tx.Exec(`UPDATE sections SET name = ?, position = ? WHERE id = ?`,
			row.Name, row.Position, id)
		if err != nil {
			return err
		}

		updated = mapSectionRowToDomainSection(row)
		return nil
	})
	if err != nil {
		return domain.Section{}, err
	}
	return updated, nil
}

// Delete detaches the section's tasks rather than removing them; they stay
// in the project with no section.
func (r *SectionRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`UPDATE tasks SET section_id = NULL WHERE section_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.Exec(`DELETE FROM sections WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrSectionNotFound
		}
		return nil
	})
}

func mapSectionRowToDomainSection(row sectionRow) domain.Section {
	return domain.Section{
		ID:        row.ID,
		Name:      row.Name,
		ProjectID: row.ProjectID,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
	}
}
