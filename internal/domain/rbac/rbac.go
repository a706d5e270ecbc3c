// Package rbac implementa la matriz estática de permisos Rol × Recurso × Acción.
// La matriz es inmutable después del arranque; toda combinación desconocida
// resuelve a denegación, nunca a error.
package rbac

// Role conjunto cerrado de roles del sistema.
type Role string

// Roles válidos.
const (
	RoleAdmin          Role = "admin"
	RoleBodeguero      Role = "bodeguero"
	RoleComprador      Role = "comprador"
	RoleLogistico      Role = "logistico"
	RoleProduccion     Role = "produccion"
	RoleAuditor        Role = "auditor"
	RoleProjectManager Role = "project_manager"
	RoleTrabajador     Role = "trabajador"
)

// Resource conjunto cerrado de recursos protegidos.
type Resource string

// Recursos protegidos.
const (
	ResourceUsers          Resource = "users"
	ResourceInventory      Resource = "inventory"
	ResourceMovements      Resource = "movements"
	ResourceSuppliers      Resource = "suppliers"
	ResourcePurchaseOrders Resource = "purchaseOrders"
	ResourceReports        Resource = "reports" // solo view
	ResourceAudit          Resource = "audit"   // solo view
)

// Action capacidades verificables sobre un recurso.
type Action string

// Acciones.
const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Roles devuelve todos los roles definidos, en orden estable.
func Roles() []Role {
	return []Role{
		RoleAdmin, RoleBodeguero, RoleComprador, RoleLogistico,
		RoleProduccion, RoleAuditor, RoleProjectManager, RoleTrabajador,
	}
}

// Resources devuelve todos los recursos definidos, en orden estable.
func Resources() []Resource {
	return []Resource{
		ResourceUsers, ResourceInventory, ResourceMovements,
		ResourceSuppliers, ResourcePurchaseOrders, ResourceReports, ResourceAudit,
	}
}

// ParseRole valida una cadena contra el conjunto cerrado de roles.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	switch r {
	case RoleAdmin, RoleBodeguero, RoleComprador, RoleLogistico,
		RoleProduccion, RoleAuditor, RoleProjectManager, RoleTrabajador:
		return r, true
	}
	return "", false
}

// capability subconjunto de acciones permitidas sobre un recurso.
// Una acción ausente del mapa se niega (deny-by-default).
type capability map[Action]bool

// rolePermissions matriz completa: definida para cada par (rol, recurso).
// reports y audit solo declaran view.
var rolePermissions = map[Role]map[Resource]capability{
	RoleAdmin: {
		ResourceUsers:          {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ResourceInventory:      {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ResourceMovements:      {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ResourceSuppliers:      {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ResourcePurchaseOrders: {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true},
		ResourceReports:        {ActionView: true},
		ResourceAudit:          {ActionView: true},
	},
	RoleBodeguero: {
		ResourceUsers:          {},
		ResourceInventory:      {ActionView: true, ActionCreate: true, ActionEdit: true},
		ResourceMovements:      {ActionView: true, ActionCreate: true},
		ResourceSuppliers:      {ActionView: true},
		ResourcePurchaseOrders: {ActionView: true},
		ResourceReports:        {ActionView: true},
		ResourceAudit:          {},
	},
	RoleComprador: {
		ResourceUsers:          {},
		ResourceInventory:      {ActionView: true},
		ResourceMovements:      {ActionView: true},
		ResourceSuppliers:      {ActionView: true, ActionCreate: true, ActionEdit: true},
		ResourcePurchaseOrders: {ActionView: true, ActionCreate: true, ActionEdit: true},
		ResourceReports:        {ActionView: true},
		ResourceAudit:          {},
	},
	RoleLogistico: {
		ResourceUsers:          {},
		ResourceInventory:      {ActionView: true, ActionEdit: true},
		ResourceMovements:      {ActionView: true, ActionCreate: true},
		ResourceSuppliers:      {ActionView: true},
		ResourcePurchaseOrders: {ActionView: true},
		ResourceReports:        {ActionView: true},
		ResourceAudit:          {},
	},
	RoleProduccion: {
		ResourceUsers:          {},
		ResourceInventory:      {ActionView: true},
		ResourceMovements:      {ActionView: true, ActionCreate: true},
		ResourceSuppliers:      {},
		ResourcePurchaseOrders: {},
		ResourceReports:        {ActionView: true},
		ResourceAudit:          {},
	},
	RoleAuditor: {
		ResourceUsers:          {ActionView: true},
		ResourceInventory:      {ActionView: true},
		ResourceMovements:      {ActionView: true},
		ResourceSuppliers:      {ActionView: true},
		ResourcePurchaseOrders: {ActionView: true},
		ResourceReports:        {ActionView: true},
		ResourceAudit:          {ActionView: true},
	},
	RoleProjectManager: {
		ResourceUsers:          {ActionView: true},
		ResourceInventory:      {ActionView: true},
		ResourceMovements:      {ActionView: true},
		ResourceSuppliers:      {ActionView: true},
		ResourcePurchaseOrders: {ActionView: true, ActionCreate: true, ActionEdit: true},
		ResourceReports:        {ActionView: true},
		ResourceAudit:          {ActionView: true},
	},
	RoleTrabajador: {
		ResourceUsers:          {},
		ResourceInventory:      {ActionView: true},
		ResourceMovements:      {ActionView: true},
		ResourceSuppliers:      {},
		ResourcePurchaseOrders: {},
		ResourceReports:        {},
		ResourceAudit:          {},
	},
}

// HasPermission evalúa la matriz para (rol, recurso, acción).
// Función pura y total: retorna true solo si la matriz tiene una entrada
// explícita en true; cualquier combinación desconocida se niega.
// Es el único punto de autorización del sistema; los llamadores deben tratar
// false como corte duro.
func HasPermission(role Role, resource Resource, action Action) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	cap, ok := perms[resource]
	if !ok {
		return false
	}
	return cap[action]
}
