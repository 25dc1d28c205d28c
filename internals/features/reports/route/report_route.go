package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/reports/controller"
	"mbg_backend/internals/middlewares/auth"
)

func ReportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := app.Group("/api/reports",
		auth.AuthMiddleware(db),
		auth.OnlyRoles(constants.RoleError("laporan agregat"), constants.AdminAndDinkes...),
	)

	reports.Get("/attendance", ctrl.GetAttendanceReport)
	reports.Get("/catering", ctrl.GetCateringReport)
	reports.Get("/feedback", ctrl.GetFeedbackReport)
	reports.Get("/emergency", ctrl.GetEmergencyReport)
}
