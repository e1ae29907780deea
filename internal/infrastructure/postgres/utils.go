package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/ceramicas-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// duplicateKey traduce la violación de unicidad al error de dominio con el campo afectado.
// Los índices únicos siguen la convención <tabla>_<campo>_key.
func duplicateKey(err error) error {
	var pgErr *pgconn.PgError
	field := "value"
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		name := strings.TrimSuffix(pgErr.ConstraintName, "_key")
		if i := strings.Index(name, "_"); i >= 0 {
			name = name[i+1:]
		}
		field = name
	}
	return &domain.DuplicateKeyError{Field: field}
}
