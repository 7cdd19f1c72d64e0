package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err does not
// come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyError maps a driver error onto the repository sentinels.
//
//   - sql.ErrNoRows                         → [ErrNoUserWasFound]
//   - unique_violation (23505)               → [ErrDuplicateKey]
//   - Class 22 data exceptions, not_null (23502) → [ErrInvalidData]
//   - anything else                          → [ErrExecutingQuery]
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}

	code := postgresError(err)
	switch {
	case code == pgerrcode.UniqueViolation:
		return ErrDuplicateKey
	case code == pgerrcode.NotNullViolation, pgerrcode.IsDataException(code):
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
