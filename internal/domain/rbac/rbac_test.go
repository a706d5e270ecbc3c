package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/rbac"
)

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de permisos
// ──────────────────────────────────────────────────────────────────────────────

// Admin: todas las acciones sobre todos los recursos CRUD; reports y audit
// solo se consultan.
func TestHasPermission_AdminTodoPermitido(t *testing.T) {
	crud := []rbac.Resource{
		rbac.ResourceUsers, rbac.ResourceInventory, rbac.ResourceMovements,
		rbac.ResourceSuppliers, rbac.ResourcePurchaseOrders,
	}
	for _, res := range crud {
		for _, act := range []rbac.Action{rbac.ActionView, rbac.ActionCreate, rbac.ActionEdit, rbac.ActionDelete} {
			assert.True(t, rbac.HasPermission(rbac.RoleAdmin, res, act),
				"admin debe poder %s sobre %s", act, res)
		}
	}
	assert.True(t, rbac.HasPermission(rbac.RoleAdmin, rbac.ResourceReports, rbac.ActionView))
	assert.True(t, rbac.HasPermission(rbac.RoleAdmin, rbac.ResourceAudit, rbac.ActionView))
}

// Bodeguero: opera inventario y movimientos pero no borra ni gestiona usuarios.
func TestHasPermission_Bodeguero(t *testing.T) {
	r := rbac.RoleBodeguero

	assert.True(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionView))
	assert.True(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionCreate))
	assert.True(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionEdit))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionDelete),
		"bodeguero no debe poder eliminar artículos")

	assert.True(t, rbac.HasPermission(r, rbac.ResourceMovements, rbac.ActionCreate))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceMovements, rbac.ActionEdit))

	assert.False(t, rbac.HasPermission(r, rbac.ResourceUsers, rbac.ActionView))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceAudit, rbac.ActionView))
}

// Comprador: gestiona proveedores y órdenes de compra, inventario solo lectura.
func TestHasPermission_Comprador(t *testing.T) {
	r := rbac.RoleComprador

	assert.True(t, rbac.HasPermission(r, rbac.ResourceSuppliers, rbac.ActionCreate))
	assert.True(t, rbac.HasPermission(r, rbac.ResourcePurchaseOrders, rbac.ActionEdit))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceSuppliers, rbac.ActionDelete))

	assert.True(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionView))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionCreate))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceMovements, rbac.ActionCreate))
}

// Logístico: edita inventario sin crearlo y registra movimientos.
func TestHasPermission_Logistico(t *testing.T) {
	r := rbac.RoleLogistico

	assert.True(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionEdit))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionCreate),
		"logistico edita existencias pero no da de alta artículos")
	assert.True(t, rbac.HasPermission(r, rbac.ResourceMovements, rbac.ActionCreate))
}

// Producción: registra movimientos pero no ve proveedores ni órdenes.
func TestHasPermission_Produccion(t *testing.T) {
	r := rbac.RoleProduccion

	assert.True(t, rbac.HasPermission(r, rbac.ResourceMovements, rbac.ActionCreate))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceSuppliers, rbac.ActionView))
	assert.False(t, rbac.HasPermission(r, rbac.ResourcePurchaseOrders, rbac.ActionView))
}

// Auditor: lo ve todo (incluida la auditoría) y no modifica nada.
func TestHasPermission_AuditorSoloLectura(t *testing.T) {
	r := rbac.RoleAuditor

	for _, res := range rbac.Resources() {
		assert.True(t, rbac.HasPermission(r, res, rbac.ActionView),
			"auditor debe poder ver %s", res)
		assert.False(t, rbac.HasPermission(r, res, rbac.ActionCreate),
			"auditor no debe poder crear en %s", res)
		assert.False(t, rbac.HasPermission(r, res, rbac.ActionEdit))
		assert.False(t, rbac.HasPermission(r, res, rbac.ActionDelete))
	}
}

// Project manager: ve usuarios y auditoría, gestiona órdenes de compra.
func TestHasPermission_ProjectManager(t *testing.T) {
	r := rbac.RoleProjectManager

	assert.True(t, rbac.HasPermission(r, rbac.ResourceUsers, rbac.ActionView))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceUsers, rbac.ActionCreate))
	assert.True(t, rbac.HasPermission(r, rbac.ResourcePurchaseOrders, rbac.ActionCreate))
	assert.True(t, rbac.HasPermission(r, rbac.ResourceAudit, rbac.ActionView))
}

// Trabajador: solo consulta inventario y movimientos; ni reportes ni nada más.
func TestHasPermission_TrabajadorMinimo(t *testing.T) {
	r := rbac.RoleTrabajador

	assert.True(t, rbac.HasPermission(r, rbac.ResourceInventory, rbac.ActionView))
	assert.True(t, rbac.HasPermission(r, rbac.ResourceMovements, rbac.ActionView))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceMovements, rbac.ActionCreate))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceReports, rbac.ActionView))
	assert.False(t, rbac.HasPermission(r, rbac.ResourceUsers, rbac.ActionView))
}

// ──────────────────────────────────────────────────────────────────────────────
// Denegación por defecto
// ──────────────────────────────────────────────────────────────────────────────

// Combinaciones fuera de la matriz se niegan sin error.
func TestHasPermission_DesconocidoSiempreNiega(t *testing.T) {
	assert.False(t, rbac.HasPermission(rbac.Role("superusuario"), rbac.ResourceInventory, rbac.ActionView))
	assert.False(t, rbac.HasPermission(rbac.RoleAdmin, rbac.Resource("billing"), rbac.ActionView))
	assert.False(t, rbac.HasPermission(rbac.RoleAdmin, rbac.ResourceInventory, rbac.Action("export")))
	assert.False(t, rbac.HasPermission(rbac.Role(""), rbac.Resource(""), rbac.Action("")))
}

// Solo admin, comprador y project_manager pueden crear órdenes de compra.
func TestHasPermission_CrearOrdenesDeCompra(t *testing.T) {
	permitidos := map[rbac.Role]bool{
		rbac.RoleAdmin:          true,
		rbac.RoleComprador:      true,
		rbac.RoleProjectManager: true,
	}
	for _, role := range rbac.Roles() {
		got := rbac.HasPermission(role, rbac.ResourcePurchaseOrders, rbac.ActionCreate)
		assert.Equal(t, permitidos[role], got,
			"crear órdenes de compra con rol %s", role)
	}
}

// reports y audit nunca admiten acciones de escritura, para ningún rol.
func TestHasPermission_ReportsYAuditSoloView(t *testing.T) {
	for _, role := range rbac.Roles() {
		for _, res := range []rbac.Resource{rbac.ResourceReports, rbac.ResourceAudit} {
			for _, act := range []rbac.Action{rbac.ActionCreate, rbac.ActionEdit, rbac.ActionDelete} {
				assert.False(t, rbac.HasPermission(role, res, act),
					"%s no debe poder %s sobre %s", role, act, res)
			}
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseRole
// ──────────────────────────────────────────────────────────────────────────────

func TestParseRole_RolesValidos(t *testing.T) {
	for _, role := range rbac.Roles() {
		parsed, ok := rbac.ParseRole(string(role))
		require.True(t, ok, "el rol %s debe ser válido", role)
		assert.Equal(t, role, parsed)
	}
}

func TestParseRole_RolesInvalidos(t *testing.T) {
	for _, s := range []string{"", "Admin", "ADMIN", "vendedor", "admin "} {
		_, ok := rbac.ParseRole(s)
		assert.False(t, ok, "%q no debe aceptarse como rol", s)
	}
}
