package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/schools/school/controller"
	"mbg_backend/internals/middlewares/auth"
)

func SchoolRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewSchoolController(db)

	schools := app.Group("/api/schools",
		auth.AuthMiddleware(db),
		auth.OnlyRoles(constants.RoleErrorAdmin("mengelola sekolah"), constants.AdminAndAbove...),
	)

	schools.Get("/", ctrl.GetAllSchools)
	schools.Get("/:id", ctrl.GetSchoolByID)
	schools.Post("/",
		auth.OnlyRoles(constants.RoleError("membuat sekolah"), constants.MasterAdminOnly...),
		ctrl.CreateSchool)
	schools.Post("/:id/rotate-api-key",
		auth.OnlyRoles(constants.RoleError("rotasi API key"), constants.MasterAdminOnly...),
		ctrl.RotateAPIKey)
	schools.Put("/:id", ctrl.UpdateSchool)
	schools.Delete("/:id",
		auth.OnlyRoles(constants.RoleError("menghapus sekolah"), constants.MasterAdminOnly...),
		ctrl.DeleteSchool)
}
