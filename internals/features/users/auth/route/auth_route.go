// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "mbg_backend/internals/features/users/auth/controller"
	rateLimiter "mbg_backend/internals/middlewares"
	authMiddleware "mbg_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/forgot-password", rateLimiter.ForgotPasswordRateLimiter(), authController.ForgotPassword)
	baseAuth.Post("/forgot-password/reset", authController.ResetPassword)

	// ==========================
	// PROTECTED (bearer)
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))

	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Post("/change-password", authController.ChangePassword)
}
