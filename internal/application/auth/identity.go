package auth

import (
	"context"
	"time"

	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

// Identity usuario autenticado de la request. Es un valor: los consumidores reciben copias.
type Identity struct {
	UserID    string
	Name      string
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin indica si la identidad tiene rol admin.
func (i Identity) IsAdmin() bool { return i.Role == entity.RoleAdmin }

// Profile devuelve la identidad como perfil público.
func (i Identity) Profile() dto.UserResponse {
	return dto.UserResponse{
		ID:        i.UserID,
		Name:      i.Name,
		Email:     i.Email,
		Role:      i.Role,
		IsActive:  i.IsActive,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func identityFromUser(u *entity.User) Identity {
	return Identity{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type identityKey struct{}

// WithIdentity devuelve un contexto hijo que transporta la identidad.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom extrae la identidad puesta por el middleware de autenticación.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
