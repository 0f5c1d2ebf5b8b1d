package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/config"
	"github.com/recipeshare/server/internal/models"
)

const credentialsKey = "credentials"

// Credentials extracts the bearer token and, when the config allows it, the
// X-Dev-Role override header into the request context. Resolution against the
// user collection happens later, inside each service.
func Credentials(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := authz.Credentials{}

		auth := c.Get(fiber.HeaderAuthorization)
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			creds.Token = strings.TrimSpace(token)
		}

		if cfg.RoleOverrideEnabled {
			if role, ok := models.ParseRole(c.Get("X-Dev-Role")); ok {
				creds.RoleOverride = role
			}
		}

		c.Locals(credentialsKey, creds)
		return c.Next()
	}
}

// GetCredentials returns the credentials stored by the Credentials
// middleware.
func GetCredentials(c *fiber.Ctx) authz.Credentials {
	if creds, ok := c.Locals(credentialsKey).(authz.Credentials); ok {
		return creds
	}
	return authz.Anonymous
}
