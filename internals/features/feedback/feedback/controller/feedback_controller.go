package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cateringModel "mbg_backend/internals/features/catering/catering/model"
	"mbg_backend/internals/features/feedback/feedback/dto"
	feedbackModel "mbg_backend/internals/features/feedback/feedback/model"
	helpers "mbg_backend/internals/helpers"
)

var validate = validator.New()

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// POST /api/feedback — siswa menilai menu katering.
func (fc *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input dto.CreateFeedbackRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	cateringLogID, err := uuid.Parse(input.CateringLogID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "catering_log_id tidak valid")
	}

	var cateringLog cateringModel.CateringLogModel
	if err := fc.DB.First(&cateringLog, "id = ?", cateringLogID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Log katering tidak ditemukan")
	}

	// Satu siswa satu feedback per menu
	var existing int64
	fc.DB.Model(&feedbackModel.FeedbackModel{}).
		Where("catering_log_id = ? AND user_id = ?", cateringLogID, userID).
		Count(&existing)
	if existing > 0 {
		return helpers.JsonError(c, fiber.StatusConflict, "Anda sudah memberi feedback untuk menu ini")
	}

	feedback := feedbackModel.FeedbackModel{
		CateringLogID: cateringLogID,
		UserID:        userID,
		Rating:        input.Rating,
		Komentar:      input.Komentar,
		Timestamp:     time.Now().UTC(),
	}
	if err := fc.DB.Create(&feedback).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}

	return helpers.JsonCreated(c, "Feedback tersimpan", dto.ToFeedbackResponse(feedback))
}

// GET /api/feedback/me
func (fc *FeedbackController) GetMyFeedback(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var items []feedbackModel.FeedbackModel
	if err := fc.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}
	return helpers.JsonOK(c, "ok", dto.ToFeedbackResponses(items))
}

// GET /api/feedback/menu/:catering_log_id — semua feedback satu menu plus rata-rata.
func (fc *FeedbackController) GetFeedbackByMenu(c *fiber.Ctx) error {
	cateringLogID, err := uuid.Parse(c.Params("catering_log_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "catering_log_id tidak valid")
	}

	var items []feedbackModel.FeedbackModel
	if err := fc.DB.Where("catering_log_id = ?", cateringLogID).
		Order("timestamp DESC").
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}

	avg := 0.0
	if len(items) > 0 {
		sum := 0
		for _, f := range items {
			sum += f.Rating
		}
		avg = float64(sum) / float64(len(items))
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"catering_log_id": cateringLogID,
		"average_rating":  avg,
		"total":           len(items),
		"items":           dto.ToFeedbackResponses(items),
	})
}
