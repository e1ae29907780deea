package dto

import "github.com/jhoicas/ceramicas-api/internal/domain/entity"

// FromUser mapea la entidad a su salida pública (sin hash).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromProduct mapea la entidad a su salida; el ceramista solo aparece si vino poblado.
func FromProduct(p *entity.Product) ProductResponse {
	out := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Images:      nonNil(p.Images),
		CeramistID:  p.CeramistID,
		IsAvailable: p.IsAvailable,
		Dimensions: DimensionsDTO{
			Height: p.Dimensions.Height,
			Width:  p.Dimensions.Width,
			Depth:  p.Dimensions.Depth,
		},
		Weight:    p.Weight,
		Materials: nonNil(p.Materials),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Ceramist != nil {
		out.Ceramist = &CeramistResponse{ID: p.Ceramist.ID, Name: p.Ceramist.Name, Email: p.Ceramist.Email}
	}
	return out
}

// FromProducts mapea una lista; nunca devuelve nil.
func FromProducts(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
