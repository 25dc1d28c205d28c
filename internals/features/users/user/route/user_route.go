package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/users/user/controller"
	"mbg_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	regCtrl := controller.NewRegistrationController(db)

	users := app.Group("/api/users",
		auth.AuthMiddleware(db),
		auth.OnlyRoles(constants.RoleErrorAdmin("mengelola user"), constants.AdminAndAbove...),
	)

	users.Get("/", userCtrl.GetAllUsers)
	users.Get("/registrations/pending", regCtrl.GetPendingRegistrations)
	users.Get("/:id", userCtrl.GetUserByID)
	users.Post("/", userCtrl.CreateUser)
	users.Post("/masteradmin",
		auth.OnlyRoles(constants.RoleError("membuat MASTERADMIN"), constants.MasterAdminOnly...),
		userCtrl.CreateMasterAdmin)
	users.Post("/:id/registration-decision", regCtrl.DecideRegistration)
	users.Put("/:id", userCtrl.UpdateUser)
	users.Delete("/:id", userCtrl.DeleteUser)
}
