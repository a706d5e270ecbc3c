package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ReportHandler reportes de inventario: estadísticas, existencias bajas y PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsResponse
// @Router       /api/reports/stats [get]
func (h *ReportHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.InventoryStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// LowStock godoc
// @Summary      Artículos con existencias bajas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStockItems()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// DownloadPDF godoc
// @Summary      Descargar reporte de inventario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Router       /api/reports/inventory/pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadInventoryPDF()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
