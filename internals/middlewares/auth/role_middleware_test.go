package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbg_backend/internals/constants"
)

func newRoleTestApp(injectedRole string, allowed ...string) *fiber.App {
	app := fiber.New()
	if injectedRole != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userRole", injectedRole)
			return c.Next()
		})
	}
	app.Get("/guarded", OnlyRoles("akses ditolak", allowed...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRoles_MissingRoleIs401(t *testing.T) {
	app := newRoleTestApp("", constants.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnlyRoles_WrongRoleIs403(t *testing.T) {
	app := newRoleTestApp(constants.RoleSiswa, constants.RoleAdmin, constants.RoleMasterAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRoles_AllowedRolePasses(t *testing.T) {
	for _, role := range []string{constants.RoleAdmin, constants.RoleMasterAdmin} {
		app := newRoleTestApp(role, constants.RoleAdmin, constants.RoleMasterAdmin)

		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "role: %s", role)
	}
}
