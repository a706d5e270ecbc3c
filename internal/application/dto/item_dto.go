package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemResponse representación pública de un artículo de inventario.
type ItemResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	Location      string          `json:"location"`
	MinStockLevel int             `json:"min_stock_level"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateItemRequest alta de artículo.
type CreateItemRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	Location      string          `json:"location"`
	MinStockLevel int             `json:"min_stock_level"`
	ImageURL      string          `json:"image_url"`
}

// UpdateItemRequest campos editables de un artículo. Punteros = campo opcional.
// Quantity se edita aquí solo por corrección directa; los cambios de existencia
// normales van por el motor de movimientos.
type UpdateItemRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Quantity      *int             `json:"quantity"`
	Unit          *string          `json:"unit"`
	Price         *decimal.Decimal `json:"price"`
	Location      *string          `json:"location"`
	MinStockLevel *int             `json:"min_stock_level"`
	ImageURL      *string          `json:"image_url"`
}
