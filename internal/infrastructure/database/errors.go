package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// IsDuplicateKeyError checks if err is a unique constraint violation whose
// constraint or column name contains constraintName.
func IsDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && containsFold(pgErr.ConstraintName, constraintName)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		// sqlite reports "UNIQUE constraint failed: <table>.<column>"
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique && containsFold(sqliteErr.Error(), constraintName)
	}

	return false
}

// IsConstraintError reports whether err is any integrity constraint violation.
func IsConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23 = integrity_constraint_violation
		return strings.HasPrefix(pgErr.Code, "23")
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
