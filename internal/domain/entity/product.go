package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dimensions medidas físicas de la pieza (cm).
type Dimensions struct {
	Height decimal.Decimal
	Width  decimal.Decimal
	Depth  decimal.Decimal
}

// CeramistSummary datos públicos del dueño, poblados en lecturas.
type CeramistSummary struct {
	ID    string
	Name  string
	Email string
}

// Product representa una pieza publicada por un ceramista.
// CeramistID se fija al crear y no se reasigna nunca.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Stock       int
	Images      []string
	CeramistID  string
	IsAvailable bool
	Dimensions  Dimensions
	Weight      decimal.Decimal
	Materials   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Ceramist solo se llena en consultas que hacen join con users.
	Ceramist *CeramistSummary
}

// IsOwnedBy indica si userID es el dueño del producto.
func (p *Product) IsOwnedBy(userID string) bool {
	return p.CeramistID == userID
}
