package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/server/internal/authz"
	"github.com/recipeshare/server/internal/config"
	"github.com/recipeshare/server/internal/models"
)

func credentialsApp(cfg *config.Config, capture *authz.Credentials) *fiber.App {
	app := fiber.New()
	app.Use(Credentials(cfg))
	app.Get("/", func(c *fiber.Ctx) error {
		*capture = GetCredentials(c)
		return c.SendString("ok")
	})
	return app
}

func TestCredentialsExtractsBearerToken(t *testing.T) {
	var got authz.Credentials
	app := credentialsApp(&config.Config{}, &got)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer mock.u1.abc")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "mock.u1.abc", got.Token)
	assert.Empty(t, got.RoleOverride)
}

func TestCredentialsIgnoresNonBearerAuth(t *testing.T) {
	var got authz.Credentials
	app := credentialsApp(&config.Config{}, &got)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, got.Token)
}

func TestCredentialsRoleOverrideGate(t *testing.T) {
	var got authz.Credentials

	// Enabled: the header applies.
	app := credentialsApp(&config.Config{RoleOverrideEnabled: true}, &got)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Dev-Role", "admin")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.RoleOverride)

	// Unknown role names are dropped even when enabled.
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Dev-Role", "root")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, got.RoleOverride)

	// Disabled (production): the header is ignored entirely.
	app = credentialsApp(&config.Config{RoleOverrideEnabled: false}, &got)
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Dev-Role", "admin")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, got.RoleOverride)
}
