package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/emergency/report/controller"
	"mbg_backend/internals/middlewares/auth"
)

func EmergencyRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewEmergencyReportController(db)

	emergency := app.Group("/api/emergency", auth.AuthMiddleware(db))

	emergency.Post("/",
		auth.OnlyRoles(constants.RoleError("pelaporan darurat"), constants.SekolahOnly...),
		ctrl.CreateReport)
	emergency.Get("/me",
		auth.OnlyRoles(constants.RoleError("riwayat laporan darurat"), constants.SekolahOnly...),
		ctrl.GetMyReports)
	emergency.Get("/",
		auth.OnlyRoles(constants.RoleError("daftar laporan darurat"), constants.AdminAndDinkes...),
		ctrl.GetAllReports)
	emergency.Put("/:id/status",
		auth.OnlyRoles(constants.RoleError("penanganan laporan darurat"), constants.AdminAndDinkes...),
		ctrl.UpdateReportStatus)
}
