package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	ItemUC           *usecase.ItemUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementUC       *usecase.MovementUseCase
	SupplierUC       *usecase.SupplierUseCase
	PurchaseOrderUC  *usecase.PurchaseOrderUseCase
	ReportUC         *usecase.ReportUseCase
	AuditUC          *usecase.AuditUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Toda ruta de negocio pasa por
// AuthMiddleware y por RequirePermission con el par recurso/acción que
// le corresponde en la matriz de permisos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin via matriz)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequirePermission(rbac.ResourceUsers, rbac.ActionView), userHandler.List)
	users.Get("/:id", RequirePermission(rbac.ResourceUsers, rbac.ActionView), userHandler.GetByID)
	users.Post("/", RequirePermission(rbac.ResourceUsers, rbac.ActionCreate), userHandler.Create)
	users.Put("/:id", RequirePermission(rbac.ResourceUsers, rbac.ActionEdit), userHandler.Update)
	users.Delete("/:id", RequirePermission(rbac.ResourceUsers, rbac.ActionDelete), userHandler.Delete)

	// Inventory items
	items := protected.Group("/inventory")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", RequirePermission(rbac.ResourceInventory, rbac.ActionView), itemHandler.List)
	items.Get("/:id", RequirePermission(rbac.ResourceInventory, rbac.ActionView), itemHandler.GetByID)
	items.Post("/", RequirePermission(rbac.ResourceInventory, rbac.ActionCreate), itemHandler.Create)
	items.Put("/:id", RequirePermission(rbac.ResourceInventory, rbac.ActionEdit), itemHandler.Update)
	items.Delete("/:id", RequirePermission(rbac.ResourceInventory, rbac.ActionDelete), itemHandler.Delete)

	// Movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementUC)
	movements.Get("/", RequirePermission(rbac.ResourceMovements, rbac.ActionView), movementHandler.List)
	movements.Post("/", RequirePermission(rbac.ResourceMovements, rbac.ActionCreate), movementHandler.Register)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", RequirePermission(rbac.ResourceSuppliers, rbac.ActionView), supplierHandler.List)
	suppliers.Get("/:id", RequirePermission(rbac.ResourceSuppliers, rbac.ActionView), supplierHandler.GetByID)
	suppliers.Post("/", RequirePermission(rbac.ResourceSuppliers, rbac.ActionCreate), supplierHandler.Create)
	suppliers.Put("/:id", RequirePermission(rbac.ResourceSuppliers, rbac.ActionEdit), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission(rbac.ResourceSuppliers, rbac.ActionDelete), supplierHandler.Delete)

	// Purchase orders
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Get("/", RequirePermission(rbac.ResourcePurchaseOrders, rbac.ActionView), orderHandler.List)
	orders.Get("/:id", RequirePermission(rbac.ResourcePurchaseOrders, rbac.ActionView), orderHandler.GetByID)
	orders.Post("/", RequirePermission(rbac.ResourcePurchaseOrders, rbac.ActionCreate), orderHandler.Create)
	orders.Put("/:id", RequirePermission(rbac.ResourcePurchaseOrders, rbac.ActionEdit), orderHandler.Update)
	orders.Delete("/:id", RequirePermission(rbac.ResourcePurchaseOrders, rbac.ActionDelete), orderHandler.Delete)

	// Reports
	reports := protected.Group("/reports", RequirePermission(rbac.ResourceReports, rbac.ActionView))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stats", reportHandler.Stats)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/inventory/pdf", reportHandler.DownloadPDF)

	// Audit log
	auditGroup := protected.Group("/audit", RequirePermission(rbac.ResourceAudit, rbac.ActionView))
	auditHandler := NewAuditHandler(deps.AuditUC)
	auditGroup.Get("/", auditHandler.List)
}
