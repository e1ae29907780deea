package repository

import (
	"context"

	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (Credential Store).
// Los métodos de búsqueda devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	// Create persiste el usuario; un email repetido devuelve *domain.DuplicateKeyError.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateRole(ctx context.Context, id, role string) (*entity.User, error)
	// ToggleActive invierte IsActive en una sola escritura y devuelve el estado resultante.
	ToggleActive(ctx context.Context, id string) (*entity.User, error)
	ListWithProductCount(ctx context.Context) ([]*entity.UserWithProductCount, error)
	Stats(ctx context.Context) (entity.UserStats, error)
}
