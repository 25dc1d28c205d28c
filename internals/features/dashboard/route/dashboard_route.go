package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/dashboard/controller"
	"mbg_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dashboard := app.Group("/api/dashboard", auth.AuthMiddleware(db))

	dashboard.Get("/admin",
		auth.OnlyRoles(constants.RoleErrorAdmin("dashboard admin"), constants.AdminAndAbove...),
		ctrl.GetAdminDashboard)
	dashboard.Get("/school",
		auth.OnlyRoles(constants.RoleError("dashboard sekolah"), constants.RoleSekolah, constants.RoleAdmin),
		ctrl.GetSchoolDashboard)
	dashboard.Get("/catering",
		auth.OnlyRoles(constants.RoleError("dashboard katering"), constants.KateringOnly...),
		ctrl.GetCateringDashboard)
}
