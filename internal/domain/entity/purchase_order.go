package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	POStatusPending   = "pending"
	POStatusApproved  = "approved"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	ItemID    string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// PurchaseOrder representa una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID           string
	SupplierID   string
	Status       string // pending, approved, received, cancelled
	OrderDate    time.Time
	ExpectedDate time.Time
	ReceivedDate *time.Time
	Total        decimal.Decimal
	Items        []PurchaseOrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
