package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/catering/catering/controller"
	"mbg_backend/internals/middlewares/auth"
)

func CateringRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewCateringController(db)

	catering := app.Group("/api/catering", auth.AuthMiddleware(db))

	catering.Post("/",
		auth.OnlyRoles(constants.RoleError("pencatatan menu katering"), constants.KateringOnly...),
		ctrl.CreateCateringLog)
	catering.Get("/me",
		auth.OnlyRoles(constants.RoleError("log katering saya"), constants.KateringOnly...),
		ctrl.GetMyCateringLogs)
	catering.Get("/today",
		auth.OnlyRoles(constants.RoleError("menu hari ini"),
			constants.RoleSiswa, constants.RoleSekolah, constants.RoleAdmin, constants.RoleKatering, constants.RoleMasterAdmin),
		ctrl.GetTodayMenu)
	catering.Get("/",
		auth.OnlyRoles(constants.RoleError("seluruh log katering"), constants.AdminAndDinkes...),
		ctrl.GetAllCateringLogs)
}
