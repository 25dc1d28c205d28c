package controller

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
	"gorm.io/gorm/logger"

	"mbg_backend/internals/constants"
	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	userModel "mbg_backend/internals/features/users/user/model"
	"mbg_backend/internals/middlewares"
)

func setupRecapApp(t *testing.T, role string, schoolID *uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.TempDir()+"/test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceLogModel{},
	))

	ctrl := NewAttendanceController(db)
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		if schoolID != nil {
			c.Locals("school_id", schoolID.String())
		}
		return c.Next()
	})
	app.Get("/recap", ctrl.GetSchoolRecap)
	return app, db
}

func TestGetSchoolRecap_MasterAdminWithoutSchoolParamIs400(t *testing.T) {
	app, _ := setupRecapApp(t, constants.RoleMasterAdmin, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/recap", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetSchoolRecap_MasterAdminInvalidSchoolParamIs400(t *testing.T) {
	app, _ := setupRecapApp(t, constants.RoleMasterAdmin, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/recap?school_id=bukan-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetSchoolRecap_AdminWithoutSchoolIs403(t *testing.T) {
	app, _ := setupRecapApp(t, constants.RoleAdmin, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/recap", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetSchoolRecap_AdminWithSchoolIs200(t *testing.T) {
	schoolID := uuid.New()
	app, db := setupRecapApp(t, constants.RoleAdmin, &schoolID)

	student := userModel.UserModel{
		NamaLengkap:        "Siswa Uji",
		Email:              "siswa@test.local",
		Password:           "hash",
		Role:               constants.RoleSiswa,
		SchoolID:           &schoolID,
		RegistrationStatus: userModel.RegistrationApproved,
	}
	require.NoError(t, db.Create(&student).Error)
	require.NoError(t, db.Create(&attendanceModel.AttendanceLogModel{
		Timestamp: time.Now().UTC(),
		UserID:    student.ID,
		SchoolID:  schoolID,
	}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/recap", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
