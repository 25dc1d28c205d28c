// internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/configs"
	"mbg_backend/internals/constants"
	userModel "mbg_backend/internals/features/users/user/model"
	helpers "mbg_backend/internals/helpers"
	"mbg_backend/internals/helpers/notify"
)

var validate = validator.New()

type RegisterRequest struct {
	NamaLengkap string  `json:"nama_lengkap" validate:"required,min=3,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required"`
	NfcTagID    *string `json:"nfc_tag_id"`
	SchoolID    *string `json:"school_id"`
}

// Register: pendaftaran self-service. Hanya role SISWA + school wajib;
// role lain dibuat admin lewat /users. Akun baru berstatus PENDING dan
// belum bisa dipakai sampai disetujui admin sekolah.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	// Precondition bisnis, bukan sekadar format: ditolak sebelum ada row.
	if input.Role != constants.RoleSiswa {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Pendaftaran mandiri hanya untuk role SISWA")
	}
	if input.SchoolID == nil || strings.TrimSpace(*input.SchoolID) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "school_id wajib diisi untuk pendaftaran siswa")
	}
	schoolID, err := uuid.Parse(*input.SchoolID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		NamaLengkap:        input.NamaLengkap,
		Email:              input.Email,
		Password:           passwordHash,
		Role:               constants.RoleSiswa,
		NfcTagID:           input.NfcTagID,
		SchoolID:           &schoolID,
		RegistrationStatus: userModel.RegistrationPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Email REJECTED boleh daftar ulang: row lama dihapus, identitas
		// baru masuk PENDING (bukan transisi balik dari REJECTED).
		var existing userModel.UserModel
		findErr := tx.Where("email = ?", input.Email).First(&existing).Error
		if findErr == nil {
			if existing.RegistrationStatus != userModel.RegistrationRejected {
				return fiber.NewError(fiber.StatusBadRequest, "Email sudah terdaftar")
			}
			if delErr := tx.Delete(&existing).Error; delErr != nil {
				return delErr
			}
		} else if findErr != gorm.ErrRecordNotFound {
			return findErr
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helpers.JsonError(c, fe.Code, fe.Message)
		}
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] register gagal: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	_ = notify.Default().Notify(c.UserContext(), notify.Event{
		Kind:      "registration.submitted",
		SubjectID: user.ID.String(),
		At:        time.Now(),
	})

	// Tidak ada token di sini: akun PENDING belum boleh autentikasi.
	return helpers.JsonCreated(c, "Pendaftaran diterima, menunggu persetujuan admin sekolah", fiber.Map{
		"id":                  user.ID,
		"email":               user.Email,
		"registration_status": user.RegistrationStatus,
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsUsable() {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda belum disetujui admin sekolah")
	}

	return issueToken(c, user)
}

// LoginGoogle: verifikasi Google ID token, cocokkan ke akun lokal by email.
// Tidak auto-create: role & sekolah harus lewat jalur registrasi biasa.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(claimSet.Email)).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Akun Google ini belum terdaftar")
	}
	if !user.IsUsable() {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda belum disetujui admin sekolah")
	}

	return issueToken(c, user)
}

func issueToken(c *fiber.Ctx, user userModel.UserModel) error {
	token, err := IssueAccessToken(configs.JWTSecret, user.ID, configs.AccessTokenExpiresIn)
	if err != nil {
		log.Printf("[ERROR] issue token gagal: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":           user.ID,
			"nama_lengkap": user.NamaLengkap,
			"email":        user.Email,
			"role":         user.Role,
			"school_id":    user.SchoolID,
		},
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := CheckPasswordHash(user.Password, input.OldPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := db.Model(&user).Update("password", hash).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}
	return helpers.JsonUpdated(c, "Password berhasil diganti", nil)
}

// ForgotPassword: simpan OTP + expiry di row user, kirim lewat Notifier.
// Respons selalu 200 supaya keberadaan email tidak bocor.
func ForgotPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		otp, genErr := GenerateOTP()
		if genErr == nil {
			expires := time.Now().Add(configs.OTPExpiresIn)
			if upErr := db.Model(&user).Updates(map[string]any{
				"reset_otp":            otp,
				"reset_otp_expires_at": expires,
			}).Error; upErr == nil {
				_ = notify.Default().Notify(c.UserContext(), notify.Event{
					Kind:      "auth.reset_otp",
					SubjectID: user.ID.String(),
					Note:      otp,
					At:        time.Now(),
				})
			}
		}
	}

	return helpers.JsonOK(c, "Jika email terdaftar, OTP reset sudah dikirim", nil)
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input ResetPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "OTP salah atau sudah kedaluwarsa")
	}
	if user.ResetOTP == nil || user.ResetOTPExpiresAt == nil ||
		*user.ResetOTP != input.OTP || time.Now().After(*user.ResetOTPExpiresAt) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "OTP salah atau sudah kedaluwarsa")
	}

	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := db.Model(&user).Updates(map[string]any{
		"password":             hash,
		"reset_otp":            nil,
		"reset_otp_expires_at": nil,
	}).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal reset password")
	}
	return helpers.JsonUpdated(c, "Password berhasil direset", nil)
}
