package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/features/emergency/report/dto"
	reportModel "mbg_backend/internals/features/emergency/report/model"
	userModel "mbg_backend/internals/features/users/user/model"
	helpers "mbg_backend/internals/helpers"
	"mbg_backend/internals/helpers/notify"
)

var validate = validator.New()

type EmergencyReportController struct {
	DB *gorm.DB
}

func NewEmergencyReportController(db *gorm.DB) *EmergencyReportController {
	return &EmergencyReportController{DB: db}
}

// POST /api/emergency — laporan darurat keamanan pangan dari pihak sekolah.
func (ec *EmergencyReportController) CreateReport(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ec.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if user.SchoolID == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Akun Anda belum terhubung ke sekolah")
	}

	var input dto.CreateEmergencyReportRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	report := reportModel.EmergencyReportModel{
		Deskripsi: input.Deskripsi,
		Status:    reportModel.ReportBaru,
		Timestamp: time.Now().UTC(),
		UserID:    user.ID,
		SchoolID:  *user.SchoolID,
	}
	if err := ec.DB.Create(&report).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan darurat")
	}

	_ = notify.Default().Notify(c.UserContext(), notify.Event{
		Kind:      "emergency.reported",
		SubjectID: report.ID.String(),
		ActorID:   user.ID.String(),
		Note:      input.Deskripsi,
		At:        time.Now(),
	})

	return helpers.JsonCreated(c, "Laporan darurat terkirim", dto.ToEmergencyReportResponse(report))
}

// GET /api/emergency/me
func (ec *EmergencyReportController) GetMyReports(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var items []reportModel.EmergencyReportModel
	if err := ec.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	return helpers.JsonOK(c, "ok", dto.ToEmergencyReportResponses(items))
}

// GET /api/emergency?status=&school_id=
func (ec *EmergencyReportController) GetAllReports(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	query := ec.DB.Model(&reportModel.EmergencyReportModel{})
	if status := c.Query("status"); status != "" {
		if !reportModel.IsValidReportStatus(status) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Status laporan tidak valid")
		}
		query = query.Where("status = ?", status)
	}
	if schoolID := c.Query("school_id"); schoolID != "" {
		query = query.Where("school_id = ?", schoolID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	var items []reportModel.EmergencyReportModel
	if err := query.Order("timestamp DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	return helpers.JsonList(c, "ok", dto.ToEmergencyReportResponses(items), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// PUT /api/emergency/:id/status
func (ec *EmergencyReportController) UpdateReportStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Report ID tidak valid")
	}

	var input dto.UpdateReportStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	if !reportModel.IsValidReportStatus(input.Status) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Status laporan tidak valid")
	}

	var report reportModel.EmergencyReportModel
	if err := ec.DB.First(&report, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}

	if err := ec.DB.Model(&report).Update("status", input.Status).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal update status laporan")
	}
	report.Status = input.Status

	return helpers.JsonUpdated(c, "Status laporan diperbarui", dto.ToEmergencyReportResponse(report))
}
