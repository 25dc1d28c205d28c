package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mbg_backend/internals/features/catering/catering/dto"
	cateringModel "mbg_backend/internals/features/catering/catering/model"
	userModel "mbg_backend/internals/features/users/user/model"
	helpers "mbg_backend/internals/helpers"
)

var validate = validator.New()

type CateringController struct {
	DB *gorm.DB
}

func NewCateringController(db *gorm.DB) *CateringController {
	return &CateringController{DB: db}
}

// POST /api/catering — katering mencatat menu harian, foto opsional.
func (cc *CateringController) CreateCateringLog(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := cc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if user.SchoolID == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Akun katering belum terhubung ke sekolah")
	}

	var input dto.CreateCateringLogRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	tanggal, err := time.Parse("2006-01-02", input.Tanggal)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	fotoURL := ""
	if file, fileErr := c.FormFile("foto_menu"); fileErr == nil && file != nil {
		url, convErr := helpers.SaveMenuPhotoAsWebP("catering", file)
		if convErr != nil {
			log.Printf("[ERROR] konversi foto menu gagal: %v", convErr)
			return helpers.JsonError(c, fiber.StatusBadRequest, "Foto menu tidak valid atau terlalu besar")
		}
		fotoURL = url
	}

	entry := cateringModel.CateringLogModel{
		Tanggal:       datatypes.Date(tanggal),
		DeskripsiMenu: input.DeskripsiMenu,
		FotoMenuURL:   fotoURL,
		Catatan:       input.Catatan,
		UserID:        user.ID,
		SchoolID:      *user.SchoolID,
	}
	if err := cc.DB.Create(&entry).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan log katering")
	}

	return helpers.JsonCreated(c, "Log katering tersimpan", dto.ToCateringLogResponse(entry))
}

// GET /api/catering/me — log milik katering yang login.
func (cc *CateringController) GetMyCateringLogs(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helpers.ResolvePaging(c, 10, 100)

	query := cc.DB.Model(&cateringModel.CateringLogModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log katering")
	}

	var items []cateringModel.CateringLogModel
	if err := query.Order("tanggal DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log katering")
	}

	return helpers.JsonList(c, "ok", dto.ToCateringLogResponses(items), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/catering/today — menu hari ini untuk sekolah si pemanggil.
func (cc *CateringController) GetTodayMenu(c *fiber.Ctx) error {
	schoolID := helpers.GetSchoolIDFromToken(c)
	if schoolID == nil {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda tidak terhubung ke sekolah manapun")
	}

	today := time.Now().Format("2006-01-02")

	var items []cateringModel.CateringLogModel
	if err := cc.DB.
		Where("school_id = ? AND tanggal = ?", *schoolID, today).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil menu hari ini")
	}

	return helpers.JsonOK(c, "ok", dto.ToCateringLogResponses(items))
}

// GET /api/catering — semua log, filter opsional ?school_id= untuk admin/dinkes.
func (cc *CateringController) GetAllCateringLogs(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	query := cc.DB.Model(&cateringModel.CateringLogModel{})
	if schoolID := c.Query("school_id"); schoolID != "" {
		query = query.Where("school_id = ?", schoolID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log katering")
	}

	var items []cateringModel.CateringLogModel
	if err := query.Order("tanggal DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log katering")
	}

	return helpers.JsonList(c, "ok", dto.ToCateringLogResponses(items), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}
