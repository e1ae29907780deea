package domain

import "github.com/google/uuid"

// NewID genera un identificador nuevo para un registro.
func NewID() string {
	return uuid.New().String()
}

// CheckID devuelve la forma canónica del id (minúsculas, 36 caracteres con guiones)
// o ErrInvalidID si no es un UUID. Las variantes equivalentes ({...}, urn:uuid:,
// mayúsculas, sin guiones) resuelven al mismo registro.
// Un id bien formado que no existe es responsabilidad del caller (NotFound).
func CheckID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return u.String(), nil
}
