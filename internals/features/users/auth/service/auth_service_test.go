package service

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mbg_backend/internals/constants"
	userModel "mbg_backend/internals/features/users/user/model"
)

func setupAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.TempDir()+"/test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))

	app := fiber.New()
	app.Post("/register", func(c *fiber.Ctx) error {
		return Register(db, c)
	})
	app.Post("/login", func(c *fiber.Ctx) error {
		return Login(db, c)
	})
	return app, db
}

func doRegister(t *testing.T, app *fiber.App, payload map[string]any) int {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRegister_SiswaBecomesPending(t *testing.T) {
	app, db := setupAuthTestApp(t)
	schoolID := uuid.NewString()

	status := doRegister(t, app, map[string]any{
		"nama_lengkap": "Budi Santoso",
		"email":        "budi@test.local",
		"password":     "rahasia123",
		"role":         constants.RoleSiswa,
		"school_id":    schoolID,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var user userModel.UserModel
	require.NoError(t, db.First(&user, "email = ?", "budi@test.local").Error)
	assert.Equal(t, userModel.RegistrationPending, user.RegistrationStatus)
	assert.False(t, user.IsUsable())
}

func TestRegister_NonSiswaRejectedWithoutPersist(t *testing.T) {
	app, db := setupAuthTestApp(t)

	status := doRegister(t, app, map[string]any{
		"nama_lengkap": "Calon Admin",
		"email":        "admin@test.local",
		"password":     "rahasia123",
		"role":         constants.RoleAdmin,
		"school_id":    uuid.NewString(),
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	db.Model(&userModel.UserModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRegister_MissingSchoolRejected(t *testing.T) {
	app, db := setupAuthTestApp(t)

	status := doRegister(t, app, map[string]any{
		"nama_lengkap": "Tanpa Sekolah",
		"email":        "nowhere@test.local",
		"password":     "rahasia123",
		"role":         constants.RoleSiswa,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	db.Model(&userModel.UserModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	app, _ := setupAuthTestApp(t)
	schoolID := uuid.NewString()
	payload := map[string]any{
		"nama_lengkap": "Budi Santoso",
		"email":        "budi@test.local",
		"password":     "rahasia123",
		"role":         constants.RoleSiswa,
		"school_id":    schoolID,
	}

	require.Equal(t, fiber.StatusCreated, doRegister(t, app, payload))
	assert.Equal(t, fiber.StatusBadRequest, doRegister(t, app, payload))
}

func TestRegister_RejectedEmailCanReRegister(t *testing.T) {
	app, db := setupAuthTestApp(t)
	schoolID := uuid.NewString()
	payload := map[string]any{
		"nama_lengkap": "Budi Santoso",
		"email":        "budi@test.local",
		"password":     "rahasia123",
		"role":         constants.RoleSiswa,
		"school_id":    schoolID,
	}
	require.Equal(t, fiber.StatusCreated, doRegister(t, app, payload))

	// Admin menolak pendaftaran pertama
	require.NoError(t, db.Model(&userModel.UserModel{}).
		Where("email = ?", "budi@test.local").
		Update("registration_status", userModel.RegistrationRejected).Error)

	// Daftar ulang: identitas baru, kembali PENDING
	require.Equal(t, fiber.StatusCreated, doRegister(t, app, payload))

	var users []userModel.UserModel
	require.NoError(t, db.Where("email = ?", "budi@test.local").Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, userModel.RegistrationPending, users[0].RegistrationStatus)
}

func TestLogin_PendingAccountForbidden(t *testing.T) {
	app, db := setupAuthTestApp(t)

	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	schoolID := uuid.New()
	user := userModel.UserModel{
		NamaLengkap:        "Siswa Pending",
		Email:              "pending@test.local",
		Password:           hash,
		Role:               constants.RoleSiswa,
		SchoolID:           &schoolID,
		RegistrationStatus: userModel.RegistrationPending,
	}
	require.NoError(t, db.Create(&user).Error)

	body, _ := json.Marshal(map[string]string{
		"email":    "pending@test.local",
		"password": "rahasia123",
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	app, db := setupAuthTestApp(t)

	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	user := userModel.UserModel{
		NamaLengkap:        "Admin Uji",
		Email:              "admin@test.local",
		Password:           hash,
		Role:               constants.RoleAdmin,
		RegistrationStatus: userModel.RegistrationApproved,
	}
	require.NoError(t, db.Create(&user).Error)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@test.local",
		"password": "salah-total",
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
