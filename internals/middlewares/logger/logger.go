package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"mbg_backend/internals/configs"
)

// LoggerMiddleware mencatat semua request dalam zona waktu operasional
// program (default WIB, sekolah peserta mayoritas di zona itu). reqid
// diisi middleware request-ID saat bootstrap, jadi satu request bisa
// ditelusuri dari access log ke log aplikasi.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("LOG_TIMEZONE", "Asia/Jakarta"),
		Format:     "[MBG] ${time} | ${locals:reqid} | ${ip} | ${method} ${path} | ${status} | ${latency}\n",
	})
}
