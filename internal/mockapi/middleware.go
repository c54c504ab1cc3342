package mockapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-console/internal/application/dto"
	"github.com/jhoicas/logistica-console/pkg/jwt"
)

// Locals key con los claims del bearer ya verificado.
const localClaims = "claims"

// BearerAuth valida el Bearer Token HS256 y deja los claims en c.Locals.
// Cualquier token ausente, mal formado, con otra firma o vencido recibe 401.
func BearerAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token não fornecido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token não fornecido"})
		}
		claims, err := jwt.Parse(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token inválido ou expirado"})
		}
		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// currentUserID id del usuario autenticado; 0 fuera del middleware.
func currentUserID(c *fiber.Ctx) int64 {
	claims, ok := c.Locals(localClaims).(*jwt.Claims)
	if !ok || claims == nil {
		return 0
	}
	return claims.ID
}
