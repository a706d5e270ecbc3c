package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada" // suma a la existencia
	MovementTypeSalida  = "salida"  // resta de la existencia
	MovementTypeAjuste  = "ajuste"  // fija la existencia en un valor absoluto
)

// Movement registra cada cambio de existencia de un artículo.
// Inmutable una vez creado: nunca se actualiza ni se elimina.
type Movement struct {
	ID               string
	ItemID           string
	Type             string // entrada, salida, ajuste
	Quantity         int    // magnitud solicitada (o valor objetivo en ajuste)
	PreviousQuantity int    // existencia antes del movimiento
	NewQuantity      int    // existencia resultante
	Location         string
	Responsible      string // UserID del actor
	Reason           string
	CreatedAt        time.Time
}
