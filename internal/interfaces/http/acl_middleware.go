package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/domain/acl"
)

// RequirePermission devuelve un middleware Fiber que verifica si el rol del
// token puede ejecutar la acción sobre el recurso. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto (token ausente o corrupto).
//   - 403 Forbidden    → el rol no tiene el permiso. La resolución es pura y
//     fail-closed: cualquier combinación desconocida deniega.
func RequirePermission(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr := GetRole(c)
		if roleStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		// Un rol fuera de la enumeración no se descarta aquí: GetPermissions
		// lo degrada al conjunto de "user".
		if !acl.CanAccessResource(acl.Role(roleStr), resource, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + roleStr + "' no puede ejecutar " + action + " sobre " + resource,
			})
		}
		return c.Next()
	}
}
