package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	schoolModel "mbg_backend/internals/features/schools/school/model"
)

func newAPIKeyTestApp(t *testing.T) (*fiber.App, schoolModel.SchoolModel) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.TempDir()+"/test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&schoolModel.SchoolModel{}))

	school := schoolModel.SchoolModel{
		NamaSekolah: "SDN 1 Uji",
		Alamat:      "Jl. Uji No. 1",
	}
	require.NoError(t, db.Create(&school).Error)
	require.NotEmpty(t, school.APIKey)

	app := fiber.New()
	app.Post("/sync", VerifyAPIKey(db), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("api_school_id").(string))
	})
	return app, school
}

func TestVerifyAPIKey_MissingKey(t *testing.T) {
	app, _ := newAPIKeyTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyAPIKey_InvalidKey(t *testing.T) {
	app, _ := newAPIKeyTestApp(t)

	req := httptest.NewRequest("POST", "/sync", nil)
	req.Header.Set("X-API-KEY", "key-ngawur")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyAPIKey_ValidKeyResolvesSchool(t *testing.T) {
	app, school := newAPIKeyTestApp(t)

	req := httptest.NewRequest("POST", "/sync", nil)
	req.Header.Set("X-API-KEY", school.APIKey)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
