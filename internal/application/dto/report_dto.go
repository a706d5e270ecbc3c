package dto

import "github.com/shopspring/decimal"

// InventoryStatsResponse resumen del inventario para el panel de reportes.
type InventoryStatsResponse struct {
	TotalItems      int                `json:"total_items"`
	TotalQuantity   int                `json:"total_quantity"`
	LowStockItems   int                `json:"low_stock_items"`
	TotalValue      decimal.Decimal    `json:"total_value"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}
