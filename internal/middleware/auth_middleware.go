package middleware

import (
	"strings"

	"go-warehouse-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth.
const (
	LocalUserID   = "user_id"
	LocalUserCode = "user_code"
	LocalUserName = "user_name"
	LocalRole     = "user_role"
)

// RequireAuth is middleware that validates the bearer token and sets user info in context
func RequireAuth(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired token"})
		}

		c.Locals(LocalUserID, claims.ObjectID)
		c.Locals(LocalUserCode, claims.UserCode)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// RequireRole lets the request through when the authenticated user holds
// one of the given roles. It must run after RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "No role found"})
		}

		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: requires one of " + strings.Join(roles, ", ") + " roles",
		})
	}
}
