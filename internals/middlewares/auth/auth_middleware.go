// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/configs"
	authService "mbg_backend/internals/features/users/auth/service"
	userModel "mbg_backend/internals/features/users/user/model"
)

// AuthMiddleware: skema bearer. Verifikasi token -> load user -> simpan
// principal di Locals. Semua kegagalan kredensial = 401; akun yang dikenal
// tapi belum boleh dipakai = 403 (dua hal ini tidak boleh disatukan).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		userID, err := authService.VerifyAccessToken(secretKey, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid atau expired")
		}

		var user userModel.UserModel
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] DB error saat load user:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		// Gate status registrasi: SISWA PENDING/REJECTED dikenali,
		// tapi tidak diizinkan -> 403, bukan 401.
		if !user.IsUsable() {
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda belum disetujui admin sekolah")
		}

		c.Locals("user_id", user.ID.String())
		c.Locals("userRole", user.Role)
		if user.SchoolID != nil {
			c.Locals("school_id", user.SchoolID.String())
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" {
		return "", errors.New("Unauthorized - No token provided")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("Unauthorized - Format token salah")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", errors.New("Unauthorized - No token provided")
	}
	return token, nil
}
