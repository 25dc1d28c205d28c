package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/features/users/auth/service"
	userModel "mbg_backend/internals/features/users/user/model"
	helpers "mbg_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"id":                  user.ID,
		"nama_lengkap":        user.NamaLengkap,
		"email":               user.Email,
		"role":                user.Role,
		"nfc_tag_id":          user.NfcTagID,
		"school_id":           user.SchoolID,
		"registration_status": user.RegistrationStatus,
	})
}

// Logout hanya formalitas: token stateless, tidak ada revocation list.
// Klien cukup membuang tokennya.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return helpers.JsonOK(c, "Logout berhasil, hapus token di sisi klien", nil)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return service.ForgotPassword(ac.DB, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, c)
}
