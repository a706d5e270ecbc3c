package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemDTO línea de una orden de compra.
type PurchaseOrderItemDTO struct {
	ItemID    string          `json:"item_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// PurchaseOrderResponse representación pública de una orden de compra.
type PurchaseOrderResponse struct {
	ID           string                 `json:"id"`
	SupplierID   string                 `json:"supplier_id"`
	Status       string                 `json:"status"`
	OrderDate    time.Time              `json:"order_date"`
	ExpectedDate time.Time              `json:"expected_date"`
	ReceivedDate *time.Time             `json:"received_date,omitempty"`
	Total        decimal.Decimal        `json:"total"`
	Items        []PurchaseOrderItemDTO `json:"items"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// CreatePurchaseOrderRequest alta de orden de compra. Total se calcula de las líneas.
type CreatePurchaseOrderRequest struct {
	SupplierID   string                 `json:"supplier_id"`
	OrderDate    time.Time              `json:"order_date"`
	ExpectedDate time.Time              `json:"expected_date"`
	Items        []PurchaseOrderItemDTO `json:"items"`
}

// UpdatePurchaseOrderRequest cambios de estado de una orden.
type UpdatePurchaseOrderRequest struct {
	Status       *string    `json:"status"`
	ExpectedDate *time.Time `json:"expected_date"`
	ReceivedDate *time.Time `json:"received_date"`
}
