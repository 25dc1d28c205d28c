package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	helper "mbg_backend/internals/helpers"
)

// RecoveryMiddleware menangkap panic: log stack trace, balas 500 generik
// tanpa membocorkan detail internal ke klien.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] %s %s: %v", c.Method(), c.OriginalURL(), e)
		},
	})
}

// ErrorHandler fallback untuk fiber.NewError dari handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("[ERROR] unhandled: %v", err)
	}
	return helper.JsonError(c, code, msg)
}
