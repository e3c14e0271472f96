package persistence

import (
	"errors"
	"strings"

	"github.com/dvrs00/teste-de-software/core/port/out"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Common persistence errors
var (
	ErrNotFound = errors.New("not found")
)

const uniqueViolation = "23505"

// translateError turns a unique-index violation from either driver into an
// out.DuplicateError naming the offending column. Other errors pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &out.DuplicateError{Field: fieldFromConstraint(pgErr.ConstraintName), Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return &out.DuplicateError{Field: fieldFromConstraint(pqErr.Constraint), Err: err}
	}

	return err
}

// fieldFromConstraint maps pessoas_cpf_key / pessoas_email_key to the column.
func fieldFromConstraint(name string) string {
	switch {
	case strings.Contains(name, "cpf"):
		return "cpf"
	case strings.Contains(name, "email"):
		return "email"
	default:
		return name
	}
}
