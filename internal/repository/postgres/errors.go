package postgres

import (
	"database/sql"
	"errors"

	"lifeline/internal/repository"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError turns driver errors into repository sentinels. Anything it does not
// recognise is returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return repository.ErrDuplicate
		case pqForeignKeyViolation:
			return repository.ErrNotFound
		}
	}
	return err
}
