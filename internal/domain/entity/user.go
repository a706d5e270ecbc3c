package entity

import "time"

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash; plano solo para cuentas migradas del sistema legado
	Role         string // uno de rbac.Role
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
