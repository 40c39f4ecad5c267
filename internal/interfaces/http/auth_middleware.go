package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/caucamais/MAIS-Platform/internal/application/dto"
	"github.com/caucamais/MAIS-Platform/internal/application/session"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/pkg/jwt"
)

// Locals keys para identidad de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalZone   = "zone"
)

// AuthMiddleware valida el Bearer Token JWT, extrae identidad a c.Locals y
// garantiza sesión activa: si el proceso arrancó después de emitido el token,
// la sesión se recupera con su carga inicial antes de seguir.
func AuthMiddleware(jwtSecret string, mgr *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, role, zone, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if _, err := mgr.Recover(c.Context(), userID); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_UNAVAILABLE", Message: "no se pudo restablecer la sesión"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalZone, zone)
		return c.Next()
	}
}

// RequireMinimumRole exige un nivel jerárquico mínimo (después del middleware
// de auth). Un rol desconocido nunca pasa.
func RequireMinimumRole(min entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := entity.Role(GetRole(c))
		if !role.Valid() || role.Level() < min.Level() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetZone devuelve la zona del contexto (después del middleware de auth).
func GetZone(c *fiber.Ctx) string {
	v := c.Locals(LocalZone)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
