package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryPDFGenerator genera la representación gráfica (PDF) del reporte
// de inventario. La implementación vive en infrastructure/pdf.
type InventoryPDFGenerator interface {
	GenerateInventoryReport(generatedAt time.Time, items []*entity.InventoryItem, stats *dto.InventoryStatsResponse) ([]byte, error)
}

// ReportUseCase agregados de inventario para el panel de reportes:
// existencias bajas, estadísticas globales y reporte PDF.
type ReportUseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	generator    InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository, generator InventoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, movementRepo: movementRepo, generator: generator}
}

// LowStockItems devuelve los artículos con existencia en o por debajo del mínimo.
func (uc *ReportUseCase) LowStockItems() ([]*dto.ItemResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0)
	for _, it := range items {
		if it.LowStock() {
			out = append(out, toItemResponse(it))
		}
	}
	return out, nil
}

// InventoryStats calcula el resumen del inventario: totales, existencias
// bajas, valor total (cantidad × precio) y los últimos diez movimientos.
func (uc *ReportUseCase) InventoryStats() (*dto.InventoryStatsResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	totalQuantity := 0
	lowStock := 0
	totalValue := decimal.Zero
	for _, it := range items {
		totalQuantity += it.Quantity
		if it.LowStock() {
			lowStock++
		}
		totalValue = totalValue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	recent := make([]dto.MovementResponse, 0, 10)
	for i := len(movements) - 1; i >= 0 && len(recent) < 10; i-- {
		recent = append(recent, *toMovementResponse(movements[i]))
	}

	return &dto.InventoryStatsResponse{
		TotalItems:      len(items),
		TotalQuantity:   totalQuantity,
		LowStockItems:   lowStock,
		TotalValue:      totalValue,
		RecentMovements: recent,
	}, nil
}

// DownloadInventoryPDF genera el reporte de inventario en PDF.
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *ReportUseCase) DownloadInventoryPDF() ([]byte, string, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, "", err
	}
	stats, err := uc.InventoryStats()
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	pdfBytes, err := uc.generator.GenerateInventoryReport(now, items, stats)
	if err != nil {
		return nil, "", err
	}
	filename := "reporte_inventario_" + now.Format("20060102") + ".pdf"
	return pdfBytes, filename, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:               m.ID,
		ItemID:           m.ItemID,
		Type:             m.Type,
		Quantity:         m.Quantity,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		Location:         m.Location,
		Responsible:      m.Responsible,
		Reason:           m.Reason,
		CreatedAt:        m.CreatedAt,
	}
}
