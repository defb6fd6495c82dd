package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User representa un usuario del back-office.
//
// Invariante: AllowedRoutes está poblado (no vacío) si y solo si Role es
// "viewer"; para "admin" siempre es nil. Los usecases de gestión de usuarios
// lo hacen cumplir en cada escritura.
type User struct {
	ID            string
	Name          string
	Email         string // único
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          string // admin, viewer
	AllowedRoutes []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin indica si el usuario tiene el rol admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
