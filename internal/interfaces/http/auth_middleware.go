package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/pkg/jwt"
)

// Locals keys para la identidad en Fiber.
const (
	LocalUserID    = "user_id"
	LocalProfileID = "profile_id"
	LocalRole      = "role"
)

// legacyTokenHeader cabecera que usaban los clientes antiguos en lugar de
// Authorization: Bearer. Se sigue aceptando.
const legacyTokenHeader = "x-auth-token"

// AuthMiddleware valida el token JWT (Bearer o cabecera legada) y deja la
// identidad en c.Locals. Todos los fallos de verificación responden igual:
// 401 INVALID_TOKEN, sin distinguir expirado de malformado.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
		}
		userID, profileID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalProfileID, profileID)
		c.Locals(LocalRole, entity.NormalizeRole(role))
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if h := c.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return strings.TrimSpace(c.Get(legacyTokenHeader))
}

// RequireRole autoriza por allow-list de roles. Debe usarse DESPUÉS de
// AuthMiddleware. Rol ausente en el token → 401; rol no permitido → 403.
// Decisión pura sobre la identidad adjunta, nunca consulta la DB.
func RequireRole(allowedRoles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[entity.NormalizeRole(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetProfileID devuelve el ProfileID del contexto.
func GetProfileID(c *fiber.Ctx) string { return localString(c, LocalProfileID) }

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// CurrentIdentity arma la identidad explícita que se pasa a los casos de uso.
func CurrentIdentity(c *fiber.Ctx) auth.Identity {
	return auth.Identity{
		UserID:    GetUserID(c),
		ProfileID: GetProfileID(c),
		Role:      GetRole(c),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
