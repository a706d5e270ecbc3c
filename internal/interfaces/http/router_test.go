package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/localdb"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// buildAPI levanta la API completa sobre un almacén en memoria con los
// datos sembrados (admin/admin123, bodeguero1/bodeguero123, SKU001..003).
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store, err := localdb.NewStore(localdb.NewMemoryKV(), logger.Nop())
	require.NoError(t, err)

	userRepo := localdb.NewUserRepository(store)
	itemRepo := localdb.NewItemRepository(store)
	movementRepo := localdb.NewMovementRepository(store)
	supplierRepo := localdb.NewSupplierRepository(store)
	orderRepo := localdb.NewPurchaseOrderRepository(store)
	auditRepo := localdb.NewAuditRepository(store)

	recorder := audit.NewRecorder(auditRepo, logger.Nop())
	bcryptCmp := password.Bcrypt{}

	authUC := auth.NewAuthUseCase(userRepo, bcryptCmp, bcryptCmp, recorder, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:           authUC,
		UserUC:           usecase.NewUserUseCase(userRepo, bcryptCmp, recorder),
		ItemUC:           usecase.NewItemUseCase(itemRepo, recorder),
		RegisterMovement: inventory.NewRegisterMovementUseCase(store, recorder),
		MovementUC:       usecase.NewMovementUseCase(movementRepo),
		SupplierUC:       usecase.NewSupplierUseCase(supplierRepo, recorder),
		PurchaseOrderUC:  usecase.NewPurchaseOrderUseCase(orderRepo, supplierRepo, itemRepo, recorder),
		ReportUC:         usecase.NewReportUseCase(itemRepo, movementRepo, infrapdf.NewMarotoReportGenerator("almacen-test")),
		AuditUC:          usecase.NewAuditUseCase(auditRepo),
		JWTSecret:        testJWTSecret,
	})
	return app
}

// loginAs autentica contra /api/auth/login y devuelve el header Authorization.
func loginAs(t *testing.T, app *fiber.App, username, pass string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": pass})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login de %s debe funcionar", username)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func apiRequest(t *testing.T, app *fiber.App, method, path, authHeader string, payload interface{}) *http.Response {
	t.Helper()
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo de movimientos por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_BodegueroRegistraEntrada(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "bodeguero1", "bodeguero123")

	// SKU001 arranca con 15 unidades.
	resp := apiRequest(t, app, http.MethodGet, "/api/inventory/", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		ID       string `json:"id"`
		SKU      string `json:"sku"`
		Quantity int    `json:"quantity"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.NotEmpty(t, items)
	require.Equal(t, "SKU001", items[0].SKU)
	require.Equal(t, 15, items[0].Quantity)

	resp = apiRequest(t, app, http.MethodPost, "/api/movements/", token, map[string]interface{}{
		"item_id": items[0].ID, "type": "entrada", "quantity": 5, "reason": "reposición",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var mov struct {
		PreviousQuantity int    `json:"previous_quantity"`
		NewQuantity      int    `json:"new_quantity"`
		Responsible      string `json:"responsible"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mov))
	assert.Equal(t, 15, mov.PreviousQuantity)
	assert.Equal(t, 20, mov.NewQuantity)
	assert.NotEmpty(t, mov.Responsible, "el movimiento queda atribuido al usuario del token")
}

func TestAPI_SalidaInsuficienteDevuelve409(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "bodeguero1", "bodeguero123")

	resp := apiRequest(t, app, http.MethodGet, "/api/inventory/", token, nil)
	var items []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodPost, "/api/movements/", token, map[string]interface{}{
		"item_id": items[0].ID, "type": "salida", "quantity": items[0].Quantity + 1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// La existencia no cambió.
	resp2 := apiRequest(t, app, http.MethodGet, "/api/inventory/"+items[0].ID, token, nil)
	defer resp2.Body.Close()
	var item struct {
		Quantity int `json:"quantity"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&item))
	assert.Equal(t, items[0].Quantity, item.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización por rol a través de las rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_BodegueroSinAccesoAUsuarios(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "bodeguero1", "bodeguero123")

	resp := apiRequest(t, app, http.MethodGet, "/api/users/", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_AdminGestionaUsuarios(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "admin", "admin123")

	resp := apiRequest(t, app, http.MethodGet, "/api/users/", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2 := apiRequest(t, app, http.MethodPost, "/api/users/", token, map[string]string{
		"username": "nuevo", "email": "nuevo@almacen.com",
		"password": "secreta12", "role": "trabajador",
	})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusCreated, resp2.StatusCode)
}

func TestAPI_BodegueroNoEliminaArticulos(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "bodeguero1", "bodeguero123")

	resp := apiRequest(t, app, http.MethodGet, "/api/inventory/", token, nil)
	var items []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	resp.Body.Close()

	resp = apiRequest(t, app, http.MethodDelete, "/api/inventory/"+items[0].ID, token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"bodeguero puede editar inventario pero no eliminarlo")
}

func TestAPI_SinTokenRechazado(t *testing.T) {
	app := buildAPI(t)

	resp := apiRequest(t, app, http.MethodGet, "/api/inventory/", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_AdminDescargaAuditoria(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "admin", "admin123")

	resp := apiRequest(t, app, http.MethodGet, "/api/audit/", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []struct {
		Action string `json:"action"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	require.NotEmpty(t, logs, "el login de admin ya dejó rastro")
	assert.Equal(t, "login", logs[0].Action, "orden del más reciente al más antiguo")
}

func TestAPI_ReporteStats(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "admin", "admin123")

	resp := apiRequest(t, app, http.MethodGet, "/api/reports/stats", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalItems    int `json:"total_items"`
		LowStockItems int `json:"low_stock_items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 1, stats.LowStockItems, "SKU003 está bajo mínimo en la siembra")
}
