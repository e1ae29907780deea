package entity

// UserStats conteo de cuentas por estado.
type UserStats struct {
	Total    int
	Active   int
	Inactive int
}

// ProductStats conteo de productos por disponibilidad y categoría.
type ProductStats struct {
	Total       int
	Available   int
	Unavailable int
	ByCategory  []CategoryCount // ordenado por Count descendente
}

// Stats resumen global para el panel de administración.
type Stats struct {
	Users    UserStats
	Products ProductStats
}
