package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// withTx runs fn inside a transaction and commits only when fn succeeds. The
// deferred rollback is a no-op after a successful commit.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// isDuplicateKey recognizes unique constraint violations from both drivers we
// run against: MySQL in production, SQLite in the repository tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nowUTC truncates to whole seconds so round trips through DATETIME columns
// compare equal.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// collectIDs runs an IN query over one batch of parent ids and returns the
// matching child ids. Callers guard against empty input.
func collectIDs(tx *sqlx.Tx, query string, ids []uint64) ([]uint64, error) {
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return nil, err
	}
	var out []uint64
	if err := tx.Select(&out, q, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func selectIDs(tx *sqlx.Tx, query string, args ...any) ([]uint64, error) {
	var ids []uint64
	if err := tx.Select(&ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

// deleteIn expands and executes a DELETE ... IN (...) statement; a no-op on
// an empty id list.
func deleteIn(tx *sqlx.Tx, query string, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	_, err = tx.Exec(q, args...)
	return err
}
