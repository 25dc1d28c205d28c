package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"mbg_backend/internals/configs"
	"mbg_backend/internals/constants"
	authService "mbg_backend/internals/features/users/auth/service"
	userModel "mbg_backend/internals/features/users/user/model"
	"mbg_backend/internals/middlewares"
)

func newBearerTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "rahasia-test-middleware"

	db, err := gorm.Open(sqlite.Open("file:"+t.TempDir()+"/test.db"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Get("/protected", AuthMiddleware(db), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, role, status string) userModel.UserModel {
	t.Helper()
	schoolID := uuid.New()
	u := userModel.UserModel{
		NamaLengkap:        "User Uji",
		Email:              uuid.NewString() + "@test.local",
		Password:           "hash",
		Role:               role,
		SchoolID:           &schoolID,
		RegistrationStatus: status,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestAuthMiddleware_MissingTokenIs401(t *testing.T) {
	app, _ := newBearerTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeaderIs401(t *testing.T) {
	app, _ := newBearerTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token bukan-bearer")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredTokenIs401Never403(t *testing.T) {
	app, db := newBearerTestApp(t)
	user := seedUser(t, db, constants.RoleSiswa, userModel.RegistrationApproved)

	// Sudah lewat exp + leeway
	token, err := authService.IssueAccessToken(configs.JWTSecret, user.ID, -2*time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UnknownSubjectIs401(t *testing.T) {
	app, _ := newBearerTestApp(t)

	token, err := authService.IssueAccessToken(configs.JWTSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_PendingSiswaIs403Not401(t *testing.T) {
	app, db := newBearerTestApp(t)

	for _, status := range []string{userModel.RegistrationPending, userModel.RegistrationRejected} {
		user := seedUser(t, db, constants.RoleSiswa, status)
		token, err := authService.IssueAccessToken(configs.JWTSecret, user.ID, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "status: %s", status)
	}
}

func TestAuthMiddleware_ApprovedSiswaPasses(t *testing.T) {
	app, db := newBearerTestApp(t)
	user := seedUser(t, db, constants.RoleSiswa, userModel.RegistrationApproved)

	token, err := authService.IssueAccessToken(configs.JWTSecret, user.ID, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
