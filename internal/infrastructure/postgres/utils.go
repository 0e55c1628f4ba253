package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/crm-api/internal/domain"
)

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// mapWriteError traduce la violación de FK a ErrReferentialIntegrity; el resto se envuelve con op.
func mapWriteError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrReferentialIntegrity)
	}
	return fmt.Errorf("%s: %w", op, err)
}
