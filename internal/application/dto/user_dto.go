package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT (24h) y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=8"`
	Role          string   `json:"role" validate:"required,oneof=admin viewer"`
	AllowedRoutes []string `json:"allowed_routes"` // requerido no vacío si role=viewer; debe omitirse para admin
}

// UpdateUserRequest PATCH parcial de un usuario. Cada campo distingue
// "omitido" de "enviado en null" vía Optional.
type UpdateUserRequest struct {
	Name          Optional[string]   `json:"name"`
	Email         Optional[string]   `json:"email"`
	Password      Optional[string]   `json:"password"`
	Role          Optional[string]   `json:"role"`
	AllowedRoutes Optional[[]string] `json:"allowed_routes"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AllowedRoutes []string  `json:"allowed_routes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
