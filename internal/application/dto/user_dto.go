package dto

import "time"

// RegisterRequest entrada para registro. El rol siempre es "user".
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse salida de registro y login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AdminUserResponse usuario con su cantidad de productos (panel admin).
type AdminUserResponse struct {
	UserResponse
	ProductCount int `json:"product_count"`
}

// UpdateRoleRequest entrada para cambiar el rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}
