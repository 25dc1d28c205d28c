package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/features/schools/school/dto"
	schoolModel "mbg_backend/internals/features/schools/school/model"
	helpers "mbg_backend/internals/helpers"
)

var validate = validator.New()

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// GET /api/schools
func (sc *SchoolController) GetAllSchools(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	var total int64
	if err := sc.DB.Model(&schoolModel.SchoolModel{}).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	var schools []schoolModel.SchoolModel
	if err := sc.DB.Order("nama_sekolah ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&schools).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sekolah")
	}

	return helpers.JsonList(c, "ok", dto.ToSchoolResponses(schools), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/schools/:id
func (sc *SchoolController) GetSchoolByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "School ID tidak valid")
	}

	var school schoolModel.SchoolModel
	if err := sc.DB.First(&school, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "School not found")
	}
	return helpers.JsonOK(c, "ok", dto.ToSchoolResponse(school))
}

// POST /api/schools — api_key digenerate otomatis dan dikembalikan sekali di sini.
func (sc *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var input dto.CreateSchoolRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	school := schoolModel.SchoolModel{
		NamaSekolah: input.NamaSekolah,
		Alamat:      input.Alamat,
	}
	if err := sc.DB.Create(&school).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create school")
	}

	return helpers.JsonCreated(c, "Sekolah berhasil dibuat", dto.ToSchoolWithKeyResponse(school))
}

// PUT /api/schools/:id
func (sc *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "School ID tidak valid")
	}

	var school schoolModel.SchoolModel
	if err := sc.DB.First(&school, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	var input dto.UpdateSchoolRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if input.NamaSekolah != nil {
		updates["nama_sekolah"] = *input.NamaSekolah
	}
	if input.Alamat != nil {
		updates["alamat"] = *input.Alamat
	}
	if len(updates) > 0 {
		if err := sc.DB.Model(&school).Updates(updates).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal update sekolah")
		}
	}

	return helpers.JsonUpdated(c, "Sekolah berhasil diperbarui", dto.ToSchoolResponse(school))
}

// POST /api/schools/:id/rotate-api-key
// Key lama langsung tidak berlaku, device sekolah harus diupdate manual.
func (sc *SchoolController) RotateAPIKey(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "School ID tidak valid")
	}

	var school schoolModel.SchoolModel
	if err := sc.DB.First(&school, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	newKey := uuid.NewString()
	if err := sc.DB.Model(&school).Update("api_key", newKey).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal rotasi API key")
	}
	school.APIKey = newKey

	return helpers.JsonOK(c, "API key berhasil dirotasi", dto.ToSchoolWithKeyResponse(school))
}

// DELETE /api/schools/:id
func (sc *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "School ID tidak valid")
	}

	var school schoolModel.SchoolModel
	if err := sc.DB.First(&school, "id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	if err := sc.DB.Delete(&school).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sekolah")
	}
	return helpers.JsonDeleted(c, "School deleted", nil)
}
