package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/attendance/correction/dto"
	correctionModel "mbg_backend/internals/features/attendance/correction/model"
	"mbg_backend/internals/features/attendance/correction/service"
	helpers "mbg_backend/internals/helpers"
	"mbg_backend/internals/helpers/notify"
)

var validate = validator.New()

type CorrectionController struct {
	DB *gorm.DB
}

func NewCorrectionController(db *gorm.DB) *CorrectionController {
	return &CorrectionController{DB: db}
}

// POST /api/attendance/corrections — siswa mengajukan koreksi atas log miliknya.
func (cc *CorrectionController) CreateCorrection(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input dto.CreateCorrectionRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	logID, err := uuid.Parse(input.AttendanceLogID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "attendance_log_id tidak valid")
	}

	correction, err := service.CreateCorrection(c.UserContext(), cc.DB, notify.Default(), userID, logID, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLogNotFound):
			return helpers.JsonError(c, fiber.StatusNotFound, "Log absensi tidak ditemukan")
		case errors.Is(err, service.ErrNotLogOwner):
			return helpers.JsonError(c, fiber.StatusForbidden, "Anda hanya boleh mengoreksi absensi milik sendiri")
		default:
			log.Printf("[ERROR] pengajuan koreksi gagal: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengajukan koreksi")
		}
	}

	return helpers.JsonCreated(c, "Pengajuan koreksi terkirim", dto.ToCorrectionResponse(*correction))
}

// GET /api/attendance/corrections/me
func (cc *CorrectionController) GetMyCorrections(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var items []correctionModel.AttendanceCorrectionModel
	if err := cc.DB.Where("user_id = ?", userID).
		Order("requested_at DESC").
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data koreksi")
	}

	return helpers.JsonOK(c, "ok", dto.ToCorrectionResponses(items))
}

// GET /api/attendance/corrections?status=
// MASTERADMIN melihat semua, ADMIN hanya koreksi atas log sekolahnya.
func (cc *CorrectionController) GetAllCorrections(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	query := cc.DB.Model(&correctionModel.AttendanceCorrectionModel{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if helpers.GetUserRole(c) != constants.RoleMasterAdmin {
		schoolID := helpers.GetSchoolIDFromToken(c)
		if schoolID == nil {
			return helpers.JsonError(c, fiber.StatusForbidden, "Admin tidak terhubung ke sekolah manapun")
		}
		query = query.
			Joins("JOIN attendance_logs ON attendance_logs.id = attendance_corrections.attendance_log_id").
			Where("attendance_logs.school_id = ?", *schoolID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data koreksi")
	}

	var items []correctionModel.AttendanceCorrectionModel
	if err := query.Order("requested_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data koreksi")
	}

	return helpers.JsonList(c, "ok", dto.ToCorrectionResponses(items), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /api/attendance/corrections/:id/review
func (cc *CorrectionController) ReviewCorrection(c *fiber.Ctx) error {
	correctionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Correction ID tidak valid")
	}

	adminID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input dto.ReviewCorrectionRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	correction, err := service.ReviewCorrection(c.UserContext(), cc.DB, notify.Default(),
		correctionID, adminID, helpers.GetUserRole(c), helpers.GetSchoolIDFromToken(c),
		service.CorrectionReview{Approve: input.Approve, Note: input.ReviewNote})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCorrectionNotFound):
			return helpers.JsonError(c, fiber.StatusNotFound, "Pengajuan koreksi tidak ditemukan")
		case errors.Is(err, service.ErrLogNotFound):
			return helpers.JsonError(c, fiber.StatusNotFound, "Log absensi tidak ditemukan")
		case errors.Is(err, service.ErrAlreadyReviewed):
			return helpers.JsonError(c, fiber.StatusConflict, "Koreksi sudah direview sebelumnya")
		case errors.Is(err, service.ErrSchoolScope):
			return helpers.JsonError(c, fiber.StatusForbidden, "Koreksi ini bukan dari sekolah Anda")
		default:
			log.Printf("[ERROR] review koreksi gagal: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses review koreksi")
		}
	}

	msg := "Koreksi disetujui"
	if !input.Approve {
		msg = "Koreksi ditolak"
	}
	return helpers.JsonOK(c, msg, dto.ToCorrectionResponse(*correction))
}
