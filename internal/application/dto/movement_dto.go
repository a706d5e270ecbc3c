package dto

import "time"

// RegisterMovementRequest solicitud de movimiento de inventario.
// Para entrada/salida Quantity es la magnitud; para ajuste es la existencia objetivo.
type RegisterMovementRequest struct {
	ItemID   string `json:"item_id"`
	Type     string `json:"type"` // entrada, salida, ajuste
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

// MovementResponse representación pública de un movimiento.
type MovementResponse struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"item_id"`
	Type             string    `json:"type"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Location         string    `json:"location"`
	Responsible      string    `json:"responsible"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"created_at"`
}
