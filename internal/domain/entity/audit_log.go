package entity

import "time"

// AuditLog entrada inmutable de auditoría: quién hizo qué, sobre qué y cuándo.
// Solo se agrega; no existe operación de actualización ni borrado.
type AuditLog struct {
	ID        string
	UserID    string
	Action    string // login, logout, register, create, update, delete...
	Entity    string // nombre del recurso afectado
	EntityID  string
	Details   string
	Timestamp time.Time
}
