package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DimensionsDTO alto/ancho/profundidad en cm.
// Los topes lte corresponden a NUMERIC(10,2) y NUMERIC(12,2) de la migración de products.
type DimensionsDTO struct {
	Height decimal.Decimal `json:"height" validate:"gte=0,lte=99999999.99"`
	Width  decimal.Decimal `json:"width" validate:"gte=0,lte=99999999.99"`
	Depth  decimal.Decimal `json:"depth" validate:"gte=0,lte=99999999.99"`
}

// CreateProductRequest entrada para publicar un producto. El dueño es siempre el usuario autenticado.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=3,max=100"`
	Description string           `json:"description" validate:"required,min=10,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0,lte=9999999999.99"`
	Category    string           `json:"category" validate:"omitempty,category"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0,lte=2147483647"`
	Images      []string         `json:"images" validate:"omitempty,dive,url"`
	IsAvailable *bool            `json:"is_available"`
	Dimensions  *DimensionsDTO   `json:"dimensions"`
	Weight      *decimal.Decimal `json:"weight" validate:"omitempty,gte=0,lte=99999999.99"`
	Materials   []string         `json:"materials" validate:"omitempty,dive,required"`
}

// UpdateProductRequest actualización parcial: solo se aplican los campos presentes.
// No existe campo de dueño; la propiedad no se reasigna.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string          `json:"description" validate:"omitempty,min=10,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0,lte=9999999999.99"`
	Category    *string          `json:"category" validate:"omitempty,category"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0,lte=2147483647"`
	Images      []string         `json:"images" validate:"omitempty,dive,url"`
	IsAvailable *bool            `json:"is_available"`
	Dimensions  *DimensionsDTO   `json:"dimensions"`
	Weight      *decimal.Decimal `json:"weight" validate:"omitempty,gte=0,lte=99999999.99"`
	Materials   []string         `json:"materials" validate:"omitempty,dive,required"`
}

// ProductFilterRequest filtros de listado (query string). Vacío = sin filtro.
type ProductFilterRequest struct {
	Category    string
	CeramistID  string
	IsAvailable string // "true" -> disponibles; cualquier otro valor no vacío -> no disponibles
}

// CeramistResponse datos públicos del dueño.
type CeramistResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Category    string            `json:"category"`
	Stock       int               `json:"stock"`
	Images      []string          `json:"images"`
	CeramistID  string            `json:"ceramist_id"`
	Ceramist    *CeramistResponse `json:"ceramist,omitempty"`
	IsAvailable bool              `json:"is_available"`
	Dimensions  DimensionsDTO     `json:"dimensions"`
	Weight      decimal.Decimal   `json:"weight"`
	Materials   []string          `json:"materials"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
