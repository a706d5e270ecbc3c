package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/rbac"
)

// RequirePermission devuelve un middleware Fiber que consulta la matriz de
// permisos para (rol del token, recurso, acción). Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → sin rol en el contexto o rol fuera del conjunto cerrado.
//   - 403 Forbidden    → la matriz niega la acción; corte duro, el handler no corre.
func RequirePermission(resource rbac.Resource, action rbac.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr := GetRole(c)
		if roleStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		role, ok := rbac.ParseRole(roleStr)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol desconocido",
			})
		}
		if !rbac.HasPermission(role, resource, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + roleStr + "' no tiene permiso para esta operación",
			})
		}
		return c.Next()
	}
}
