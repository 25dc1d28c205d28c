package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	authService "mbg_backend/internals/features/users/auth/service"
	"mbg_backend/internals/features/users/user/dto"
	userModel "mbg_backend/internals/features/users/user/model"
	helpers "mbg_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users
func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	var total int64
	if err := uc.DB.Model(&userModel.UserModel{}).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var users []userModel.UserModel
	if err := uc.DB.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helpers.JsonList(c, "ok", dto.ToUserResponses(users), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/users/:id
func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helpers.JsonOK(c, "ok", dto.ToUserResponse(user))
}

// POST /api/users — admin membuat akun non-self-service, langsung APPROVED.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var input dto.CreateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var schoolID *uuid.UUID
	if input.SchoolID != nil && strings.TrimSpace(*input.SchoolID) != "" {
		id, err := uuid.Parse(*input.SchoolID)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
		}
		schoolID = &id
	}

	hash, err := authService.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		NamaLengkap:        input.NamaLengkap,
		Email:              input.Email,
		Password:           hash,
		Role:               input.Role,
		NfcTagID:           input.NfcTagID,
		SchoolID:           schoolID,
		RegistrationStatus: userModel.RegistrationApproved,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email atau NFC tag sudah terdaftar")
		}
		log.Printf("[ERROR] create user gagal: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "User berhasil dibuat", dto.ToUserResponse(user))
}

// POST /api/users/masteradmin — hanya MASTERADMIN.
func (uc *UserController) CreateMasterAdmin(c *fiber.Ctx) error {
	var input struct {
		NamaLengkap string `json:"nama_lengkap" validate:"required,min=3,max=100"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	hash, err := authService.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		NamaLengkap:        input.NamaLengkap,
		Email:              input.Email,
		Password:           hash,
		Role:               constants.RoleMasterAdmin,
		RegistrationStatus: userModel.RegistrationApproved,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create MASTERADMIN")
	}
	return helpers.JsonCreated(c, "MASTERADMIN berhasil dibuat", dto.ToUserResponse(user))
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	// Proteksi row MASTERADMIN
	callerRole := helpers.GetUserRole(c)
	if user.Role == constants.RoleMasterAdmin && callerRole != constants.RoleMasterAdmin {
		return helpers.JsonError(c, fiber.StatusForbidden, "Hanya MASTERADMIN yang boleh mengubah user MASTERADMIN")
	}

	var input dto.UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if input.NamaLengkap != nil {
		updates["nama_lengkap"] = *input.NamaLengkap
	}
	if input.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Password != nil {
		hash, hashErr := authService.HashPassword(*input.Password)
		if hashErr != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		updates["password"] = hash
	}
	// Ganti role hanya boleh oleh MASTERADMIN
	if input.Role != nil && callerRole == constants.RoleMasterAdmin {
		updates["role"] = *input.Role
	}
	if input.NfcTagID != nil {
		updates["nfc_tag_id"] = *input.NfcTagID
	}
	if input.SchoolID != nil {
		schoolID, parseErr := uuid.Parse(*input.SchoolID)
		if parseErr != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "school_id tidak valid")
		}
		updates["school_id"] = schoolID
	}

	if len(updates) > 0 {
		if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
			if helpers.IsUniqueViolation(err) {
				return helpers.JsonError(c, fiber.StatusBadRequest, "Email atau NFC tag sudah terdaftar")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal update user")
		}
	}

	return helpers.JsonUpdated(c, "User berhasil diperbarui", dto.ToUserResponse(user))
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if user.Role == constants.RoleMasterAdmin && helpers.GetUserRole(c) != constants.RoleMasterAdmin {
		return helpers.JsonError(c, fiber.StatusForbidden, "Hanya MASTERADMIN yang boleh menghapus user MASTERADMIN")
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	return helpers.JsonDeleted(c, "User deleted", nil)
}
