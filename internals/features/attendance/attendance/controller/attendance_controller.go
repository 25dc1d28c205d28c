package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	"mbg_backend/internals/features/attendance/attendance/dto"
	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	userModel "mbg_backend/internals/features/users/user/model"
	helpers "mbg_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// POST /api/attendance/sync — dipanggil device sekolah lewat X-API-KEY.
// School ID SELALU dari resolusi API key, bukan dari payload.
func (ac *AttendanceController) SyncAttendance(c *fiber.Ctx) error {
	schoolID, err := helpers.GetSchoolIDFromAPIKey(c)
	if err != nil {
		return err
	}

	var input dto.SyncAttendanceRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	now := time.Now().UTC()
	synced := 0
	var skipped []string

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		for _, rec := range input.Records {
			var user userModel.UserModel
			if findErr := tx.
				Where("nfc_tag_id = ? AND school_id = ?", rec.NfcTagID, schoolID).
				First(&user).Error; findErr != nil {
				// Tag asing atau dari sekolah lain, lewati saja
				skipped = append(skipped, rec.NfcTagID)
				continue
			}

			entry := attendanceModel.AttendanceLogModel{
				Timestamp:     rec.Timestamp,
				SyncTimestamp: &now,
				UserID:        user.ID,
				SchoolID:      schoolID,
			}
			if createErr := tx.Create(&entry).Error; createErr != nil {
				return createErr
			}
			synced++
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] sync absensi gagal: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data absensi")
	}

	return helpers.JsonOK(c, "Sinkronisasi absensi selesai", dto.SyncAttendanceResponse{
		Synced:  synced,
		Skipped: skipped,
	})
}

// POST /api/attendance/log — satu tap realtime dari device (X-API-KEY).
// Tag di-resolve hanya di dalam sekolah pemilik key.
func (ac *AttendanceController) CreateAttendanceLog(c *fiber.Ctx) error {
	schoolID, err := helpers.GetSchoolIDFromAPIKey(c)
	if err != nil {
		return err
	}

	var input dto.CreateAttendanceLogRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.
		Where("nfc_tag_id = ? AND school_id = ?", input.NfcTagID, schoolID).
		First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "NFC tag tidak dikenali di sekolah ini")
	}

	entry := attendanceModel.AttendanceLogModel{
		Timestamp: input.Timestamp,
		UserID:    user.ID,
		SchoolID:  schoolID,
	}
	if err := ac.DB.Create(&entry).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helpers.JsonCreated(c, "Absensi tercatat", dto.ToAttendanceLogResponse(entry))
}

// GET /api/attendance/me — riwayat absensi siswa yang login.
func (ac *AttendanceController) GetMyAttendance(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helpers.ResolvePaging(c, 20, 100)

	query := ac.DB.Model(&attendanceModel.AttendanceLogModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat absensi")
	}

	var logs []attendanceModel.AttendanceLogModel
	if err := query.Order("timestamp DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat absensi")
	}

	return helpers.JsonList(c, "ok", dto.ToAttendanceLogResponses(logs), helpers.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/attendance/recap?month=&year=
// Rekap per tanggal untuk satu sekolah. ADMIN/SEKOLAH pakai sekolahnya sendiri,
// MASTERADMIN wajib kirim ?school_id=.
func (ac *AttendanceController) GetSchoolRecap(c *fiber.Ctx) error {
	schoolID, err := resolveRecapSchoolID(c)
	if err != nil {
		return err
	}

	now := time.Now()
	month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if month < 1 || month > 12 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Parameter month harus 1-12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	type row struct {
		UserID      uuid.UUID
		NamaLengkap string
		Timestamp   time.Time
	}
	var rows []row
	if err := ac.DB.Model(&attendanceModel.AttendanceLogModel{}).
		Select("attendance_logs.user_id, users.nama_lengkap, attendance_logs.timestamp").
		Joins("JOIN users ON users.id = attendance_logs.user_id").
		Where("attendance_logs.school_id = ? AND attendance_logs.timestamp >= ? AND attendance_logs.timestamp < ?", schoolID, start, end).
		Order("attendance_logs.timestamp ASC").
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap absensi")
	}

	// Grup per tanggal "2006-01-02" supaya frontend tinggal render kalender
	recap := make(map[string][]dto.RecapEntry)
	for _, r := range rows {
		key := r.Timestamp.Format("2006-01-02")
		recap[key] = append(recap[key], dto.RecapEntry{
			UserID:      r.UserID,
			NamaLengkap: r.NamaLengkap,
			Timestamp:   r.Timestamp,
		})
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"school_id": schoolID,
		"month":     month,
		"year":      year,
		"recap":     recap,
	})
}

// Error dikembalikan sebagai *fiber.Error supaya caller benar-benar
// berhenti; helper response menulis body lalu mengembalikan nil, jadi
// tidak bisa dipakai sebagai nilai error di sini.
func resolveRecapSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	if helpers.GetUserRole(c) == constants.RoleMasterAdmin {
		raw := c.Query("school_id")
		if raw == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "MASTERADMIN wajib mengisi parameter school_id")
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "school_id tidak valid")
		}
		return id, nil
	}

	schoolID := helpers.GetSchoolIDFromToken(c)
	if schoolID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda tidak terhubung ke sekolah manapun")
	}
	return *schoolID, nil
}
