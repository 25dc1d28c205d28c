package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "mbg_backend/internals/features/attendance/attendance/route"
	correctionRoute "mbg_backend/internals/features/attendance/correction/route"
	cateringRoute "mbg_backend/internals/features/catering/catering/route"
	dashboardRoute "mbg_backend/internals/features/dashboard/route"
	emergencyRoute "mbg_backend/internals/features/emergency/report/route"
	feedbackRoute "mbg_backend/internals/features/feedback/feedback/route"
	reportsRoute "mbg_backend/internals/features/reports/route"
	schoolRoute "mbg_backend/internals/features/schools/school/route"
	authRoute "mbg_backend/internals/features/users/auth/route"
	userRoute "mbg_backend/internals/features/users/user/route"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// Route koreksi didaftarkan sebelum route absensi supaya prefix
// /api/attendance/corrections tidak tertelan group /api/attendance.
var startedAt = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		dbStatus := "ok"
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"time":     time.Now().Format(time.RFC3339),
		})
	})

	authRoute.AuthRoutes(app, db)
	userRoute.UserRoutes(app, db)
	schoolRoute.SchoolRoutes(app, db)
	correctionRoute.CorrectionRoutes(app, db)
	attendanceRoute.AttendanceRoutes(app, db)
	cateringRoute.CateringRoutes(app, db)
	feedbackRoute.FeedbackRoutes(app, db)
	emergencyRoute.EmergencyRoutes(app, db)
	dashboardRoute.DashboardRoutes(app, db)
	reportsRoute.ReportRoutes(app, db)
}
