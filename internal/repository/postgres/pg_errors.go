package postgresrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Jaum1981/cine-api/internal/repository"
)

// wrapDBErr maps driver errors to repository-level sentinels and wraps them
// with the provided operation name.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		switch pge.Code {
		// unique_violation
		case "23505":
			return fmt.Errorf("%s: %w", op, repository.ErrConflict)
		// foreign_key_violation
		case "23503":
			return fmt.Errorf("%s: %w", op, repository.ErrForeignKey)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
