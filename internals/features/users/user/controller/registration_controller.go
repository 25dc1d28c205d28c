package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/users/user/dto"
	userModel "mbg_backend/internals/features/users/user/model"
	"mbg_backend/internals/features/users/user/service"
	helpers "mbg_backend/internals/helpers"
	"mbg_backend/internals/helpers/notify"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// GET /api/users/registrations/pending
// MASTERADMIN melihat semua, ADMIN hanya pendaftar di sekolahnya sendiri.
func (rc *RegistrationController) GetPendingRegistrations(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	query := rc.DB.Model(&userModel.UserModel{}).
		Where("registration_status = ?", userModel.RegistrationPending)

	if helpers.GetUserRole(c) != constants.RoleMasterAdmin {
		schoolID := helpers.GetSchoolIDFromToken(c)
		if schoolID == nil {
			return helpers.JsonError(c, fiber.StatusForbidden, "Admin tidak terhubung ke sekolah manapun")
		}
		query = query.Where("school_id = ?", *schoolID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftaran")
	}

	var users []userModel.UserModel
	if err := query.Order("created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftaran")
	}

	return helpers.JsonList(c, "ok", dto.ToUserResponses(users), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/users/:id/registration-decision
func (rc *RegistrationController) DecideRegistration(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input dto.RegistrationDecisionRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := service.DecideRegistration(
		c.UserContext(),
		rc.DB,
		notify.Default(),
		subjectID,
		adminID,
		helpers.GetUserRole(c),
		helpers.GetSchoolIDFromToken(c),
		service.RegistrationDecision{Approve: input.Approve, Reason: input.Reason},
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			return helpers.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		case errors.Is(err, service.ErrAlreadyDecided):
			return helpers.JsonError(c, fiber.StatusConflict, "Pendaftaran sudah diputuskan sebelumnya")
		case errors.Is(err, service.ErrSchoolScope):
			return helpers.JsonError(c, fiber.StatusForbidden, "Pendaftar bukan dari sekolah Anda")
		case errors.Is(err, service.ErrNotSelfService):
			return helpers.JsonError(c, fiber.StatusBadRequest, "User ini tidak melalui alur persetujuan")
		default:
			log.Printf("[ERROR] keputusan registrasi gagal: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses keputusan pendaftaran")
		}
	}

	msg := "Pendaftaran disetujui"
	if !input.Approve {
		msg = "Pendaftaran ditolak"
	}
	return helpers.JsonOK(c, msg, dto.ToUserResponse(*user))
}
