package dto

import "time"

// AuditLogResponse entrada de auditoría en listados.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
