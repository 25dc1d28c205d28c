package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/feedback/feedback/controller"
	"mbg_backend/internals/middlewares/auth"
)

func FeedbackRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewFeedbackController(db)

	feedback := app.Group("/api/feedback", auth.AuthMiddleware(db))

	feedback.Post("/",
		auth.OnlyRoles(constants.RoleErrorSiswa("pemberian feedback menu"), constants.SiswaOnly...),
		ctrl.CreateFeedback)
	feedback.Get("/me",
		auth.OnlyRoles(constants.RoleErrorSiswa("riwayat feedback"), constants.SiswaOnly...),
		ctrl.GetMyFeedback)
	feedback.Get("/menu/:catering_log_id",
		auth.OnlyRoles(constants.RoleError("feedback per menu"),
			constants.RoleAdmin, constants.RoleKatering, constants.RoleDinkes, constants.RoleMasterAdmin),
		ctrl.GetFeedbackByMenu)
}
