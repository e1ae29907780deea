package dto

// StatsResponse resumen del panel de administración.
type StatsResponse struct {
	Users              UserStatsResponse       `json:"users"`
	Products           ProductStatsResponse    `json:"products"`
	ProductsByCategory []CategoryCountResponse `json:"products_by_category"`
}

// UserStatsResponse cuentas por estado.
type UserStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ProductStatsResponse productos por disponibilidad.
type ProductStatsResponse struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
}

// CategoryCountResponse cantidad de productos de una categoría.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
