package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/attendance/correction/controller"
	"mbg_backend/internals/middlewares/auth"
)

func CorrectionRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewCorrectionController(db)

	corrections := app.Group("/api/attendance/corrections", auth.AuthMiddleware(db))

	corrections.Post("/",
		auth.OnlyRoles(constants.RoleErrorSiswa("pengajuan koreksi absensi"), constants.SiswaOnly...),
		ctrl.CreateCorrection)
	corrections.Get("/me",
		auth.OnlyRoles(constants.RoleErrorSiswa("riwayat koreksi absensi"), constants.SiswaOnly...),
		ctrl.GetMyCorrections)
	corrections.Get("/",
		auth.OnlyRoles(constants.RoleErrorAdmin("daftar koreksi absensi"), constants.AdminAndAbove...),
		ctrl.GetAllCorrections)
	corrections.Post("/:id/review",
		auth.OnlyRoles(constants.RoleErrorAdmin("review koreksi absensi"), constants.AdminAndAbove...),
		ctrl.ReviewCorrection)
}
