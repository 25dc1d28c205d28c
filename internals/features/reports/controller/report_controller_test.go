package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	reportModel "mbg_backend/internals/features/emergency/report/model"
	"mbg_backend/internals/middlewares"
)

func setupReportApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.TempDir()+"/test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&attendanceModel.AttendanceLogModel{},
		&reportModel.EmergencyReportModel{},
	))

	ctrl := NewReportController(db)
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Get("/reports/emergency", ctrl.GetEmergencyReport)
	return app
}

func TestGetEmergencyReport_InvalidMonthIs400(t *testing.T) {
	app := setupReportApp(t)

	for _, month := range []string{"0", "13", "-3"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/reports/emergency?month="+month+"&year=2026", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "month=%s", month)
	}
}

func TestGetEmergencyReport_ValidMonthIs200(t *testing.T) {
	app := setupReportApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/emergency?month=8&year=2026", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
