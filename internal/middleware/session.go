package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campusmesh/portal-api/internal/repository"
	"github.com/campusmesh/portal-api/internal/utils"
)

// RequireLogin loads the active session from the state store and rejects the
// request when nobody is logged in. On success the username and role are bound
// to the request locals for downstream handlers.
func RequireLogin(sessions repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := sessions.Current(c.UserContext())
		if err != nil {
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to load session")
		}
		if !session.LoggedIn {
			return utils.SendError(c, fiber.StatusUnauthorized, "login required")
		}

		c.Locals("username", session.Username)
		c.Locals("user_role", session.Role)
		return c.Next()
	}
}

// RequireRole ensures the logged-in user carries one of the allowed roles.
// It must run after RequireLogin.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		normalized := strings.ToLower(strings.TrimSpace(role))
		if normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "access denied")
		}
		return c.Next()
	}
}

// Username returns the username bound by RequireLogin.
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}
