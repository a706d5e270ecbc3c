package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo de inventario con su existencia actual.
// Quantity nunca queda negativa por movimientos; las ediciones directas vía
// CRUD quedan fuera de esa garantía.
type InventoryItem struct {
	ID            string
	SKU           string
	Name          string
	Category      string
	Quantity      int
	Unit          string // unidad, paquete, caja...
	Price         decimal.Decimal
	Location      string
	MinStockLevel int
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock indica si la existencia está en o por debajo del mínimo.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinStockLevel
}
