package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolModel "mbg_backend/internals/features/schools/school/model"
)

// VerifyAPIKey: skema tenant untuk perangkat absen. X-API-KEY dicocokkan
// persis ke schools.api_key; tanpa key atau key salah = 401 sebelum
// business logic jalan. School hasil resolve yang menjadi scope tulis,
// bukan school yang diklaim payload.
func VerifyAPIKey(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := strings.TrimSpace(c.Get("X-API-KEY"))
		if apiKey == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "API key required")
		}

		var school schoolModel.SchoolModel
		if err := db.First(&school, "api_key = ?", apiKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid API key")
			}
			log.Println("[ERROR] DB error saat verifikasi API key:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals("api_school_id", school.ID.String())
		return c.Next()
	}
}
