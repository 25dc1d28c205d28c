package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mbg_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang interceptor global, urut dari yang paling luar.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(SecurityHeadersMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
