package dto

import "time"

// UserResponse representación pública de un usuario (nunca incluye la contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest alta de usuario por un administrador.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// UpdateUserRequest campos editables de un usuario. Punteros = campo opcional.
type UpdateUserRequest struct {
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}
