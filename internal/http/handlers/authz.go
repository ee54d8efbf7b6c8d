package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"overlaysnow/internal/domain"
	applog "overlaysnow/internal/log"
	"overlaysnow/internal/services"
)

// currentUser pulls the authenticated user placed in locals by RequireUser.
func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireUser validates the bearer token and stores the resolved user in
// locals. The services behind it trust that identity completely.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: domain.ErrCodeUnauthorized, Message: "missing bearer token",
			})
		}
		u, err := auth.VerifyToken(tok)
		if err != nil {
			applog.Security(c, "auth.token.reject", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: domain.ErrCodeUnauthorized, Message: "invalid or expired token",
			})
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// AdminOnly sits after RequireUser on admin route groups. Role failures are
// FORBIDDEN, never NOT_FOUND: existence is not hidden from authenticated
// callers.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID})
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Error: domain.ErrCodeForbidden, Message: "admin role required",
			})
		}
		return c.Next()
	}
}
