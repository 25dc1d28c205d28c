package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"mbg_backend/internals/configs"
)

// newIPLimiter: limiter per-IP dengan kuota yang bisa dioverride lewat env
// (staging/demo sering butuh lebih longgar dari default produksi).
func newIPLimiter(envKey string, defaultMax int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        configs.GetEnvInt(envKey, defaultMax),
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		},
	})
}

func GlobalRateLimiter() fiber.Handler {
	return newIPLimiter("RATE_LIMIT_GLOBAL", 100, time.Minute,
		"❌ Terlalu banyak permintaan, coba lagi sebentar lagi.")
}

func LoginRateLimiter() fiber.Handler {
	return newIPLimiter("RATE_LIMIT_LOGIN", 5, time.Minute,
		"❌ Terlalu banyak percobaan login, tunggu satu menit.")
}

// Pendaftaran siswa membuat row PENDING baru, limitnya paling ketat
// supaya antrian persetujuan admin sekolah tidak dibanjiri.
func RegisterRateLimiter() fiber.Handler {
	return newIPLimiter("RATE_LIMIT_REGISTER", 3, 5*time.Minute,
		"❌ Terlalu banyak percobaan pendaftaran siswa, tunggu beberapa menit.")
}

// Tiap permintaan forgot-password menerbitkan OTP baru.
func ForgotPasswordRateLimiter() fiber.Handler {
	return newIPLimiter("RATE_LIMIT_FORGOT_PASSWORD", 2, 10*time.Minute,
		"❌ Terlalu banyak permintaan OTP reset password, tunggu 10 menit.")
}
