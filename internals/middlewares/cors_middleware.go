// middlewares/cors.go

package middlewares

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS dari whitelist env.
func CorsMiddleware() fiber.Handler {
	whitelist := os.Getenv("CORS_WHITELIST")
	if whitelist == "" {
		whitelist = strings.Join([]string{
			"http://localhost:5173",
			"http://127.0.0.1:5500",
		}, ", ")
	}
	return cors.New(cors.Config{
		AllowOrigins:     whitelist,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-KEY",
		AllowCredentials: true,
	})
}
