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

type TeamRepository struct {
	db *sqlx.DB
}

type teamRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	WorkspaceID uint64         `db:"workspace_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TeamRepository = (*TeamRepository)(nil)

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, in domain.CreateTeamInput) (domain.Team, error) {
	now := nowUTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO teams (name, description, workspace_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Description, in.WorkspaceID, now, now,
	)
	if err != nil {
		return domain.Team{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Team{}, err
	}

	return domain.Team{
		ID:          uint64(id),
		Name:        in.Name,
		Description: in.Description,
		WorkspaceID: in.WorkspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint64) (domain.Team, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM teams WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	if err != nil {
		return domain.Team{}, err
	}
	return mapTeamRowToDomainTeam(row), nil
}

func (r *TeamRepository) ListByWorkspace(ctx context.Context, workspaceID uint64) ([]domain.Team, error) {
	var rows []teamRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM teams WHERE workspace_id = ? ORDER BY id`, workspaceID)
	if err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, mapTeamRowToDomainTeam(row))
	}
	return teams, nil
}

// Delete drops memberships and detaches projects before removing the team;
// projects survive the team, tasks are untouched.
func (r *TeamRepository) Delete(ctx context.Context, id uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`DELETE FROM user_teams WHERE team_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(`UPDATE projects SET team_id = NULL WHERE team_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.Exec(`DELETE FROM teams WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrTeamNotFound
		}
		return nil
	})
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_teams (user_id, team_id) VALUES (?, ?)`,
		userID, teamID,
	)
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_teams WHERE user_id = ? AND team_id = ?`,
		userID, teamID,
	)
	return err
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID uint64) ([]domain.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, `
SELECT u.*
FROM users u
JOIN user_teams ut ON ut.user_id = u.id
WHERE ut.team_id = ?
ORDER BY u.id`, teamID)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func mapTeamRowToDomainTeam(row teamRow) domain.Team {
	team := domain.Team{
		ID:          row.ID,
		Name:        row.Name,
		WorkspaceID: row.WorkspaceID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		team.Description = &value
	}

	return team
}
