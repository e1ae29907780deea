package repository

import (
	"context"

	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

// ProductFilter criterios opcionales de listado; nil significa "sin filtro".
type ProductFilter struct {
	Category    *string
	CeramistID  *string
	IsAvailable *bool
}

// ProductRepository define el puerto de persistencia para Product (Listing Store).
// Las lecturas devuelven el ceramista poblado y (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update reescribe los campos editables; nunca modifica CeramistID.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// List ordena por fecha de creación descendente.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Stats(ctx context.Context) (entity.ProductStats, error)
}
