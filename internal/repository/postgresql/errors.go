package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

const (
	codeForeignKeyViolation       = "23503"
	codeInvalidTextRepresentation = "22P02"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

// insertRowError reports a row pointing at a profile that does not exist
// as domain.ErrProfileNotFound.
func insertRowError(err error) error {
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%w: %w", domain.ErrProfileNotFound, err)
	}

	return scanRowError(err)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
