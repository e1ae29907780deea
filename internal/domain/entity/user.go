package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsValidRole indica si role pertenece al enum de roles.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User representa una cuenta del marketplace. Un "ceramista" es un User dueño de productos.
type User struct {
	ID           string
	Name         string
	Email        string // siempre en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithProductCount usuario junto a la cantidad de productos que publica.
type UserWithProductCount struct {
	User
	ProductCount int
}
