package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/attendance/attendance/controller"
	"mbg_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	// Jalur device: API key per sekolah, tanpa JWT. Sengaja bukan group
	// supaya middleware key tidak ikut menempel ke route bearer di prefix
	// yang sama.
	app.Post("/api/attendance/sync", auth.VerifyAPIKey(db), ctrl.SyncAttendance)
	app.Post("/api/attendance/log", auth.VerifyAPIKey(db), ctrl.CreateAttendanceLog)

	attendance := app.Group("/api/attendance", auth.AuthMiddleware(db))

	attendance.Get("/me",
		auth.OnlyRoles(constants.RoleErrorSiswa("riwayat absensi"), constants.SiswaOnly...),
		ctrl.GetMyAttendance)
	attendance.Get("/recap",
		auth.OnlyRoles(constants.RoleError("rekap absensi"), constants.RoleAdmin, constants.RoleSekolah, constants.RoleMasterAdmin),
		ctrl.GetSchoolRecap)
}
