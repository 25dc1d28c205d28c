package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	cateringModel "mbg_backend/internals/features/catering/catering/model"
	reportModel "mbg_backend/internals/features/emergency/report/model"
	feedbackModel "mbg_backend/internals/features/feedback/feedback/model"
	helpers "mbg_backend/internals/helpers"
)

// ReportController menyajikan rekap lintas sekolah untuk ADMIN dan DINKES.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Error keluar sebagai *fiber.Error (bukan lewat helper response) supaya
// handler pemanggil berhenti dan tidak menimpa 400 dengan 200.
func monthRange(c *fiber.Ctx) (time.Time, time.Time, int, int, error) {
	now := time.Now()
	month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, 0, 0,
			fiber.NewError(fiber.StatusBadRequest, "Parameter month harus 1-12")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), month, year, nil
}

// GET /api/reports/attendance?month=&year=
// Jumlah kehadiran per sekolah per tanggal dalam satu bulan.
func (rc *ReportController) GetAttendanceReport(c *fiber.Ctx) error {
	start, end, month, year, err := monthRange(c)
	if err != nil {
		return err
	}

	type row struct {
		SchoolID string
		Tanggal  string
		Total    int64
	}
	var rows []row
	if err := rc.DB.Model(&attendanceModel.AttendanceLogModel{}).
		Select("school_id, to_char(timestamp, 'YYYY-MM-DD') AS tanggal, COUNT(*) AS total").
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Group("school_id, to_char(timestamp, 'YYYY-MM-DD')").
		Order("tanggal ASC").
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan absensi")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"month": month,
		"year":  year,
		"rows":  rows,
	})
}

// GET /api/reports/catering?month=&year=
func (rc *ReportController) GetCateringReport(c *fiber.Ctx) error {
	start, end, month, year, err := monthRange(c)
	if err != nil {
		return err
	}

	type row struct {
		SchoolID string
		Total    int64
	}
	var rows []row
	if err := rc.DB.Model(&cateringModel.CateringLogModel{}).
		Select("school_id, COUNT(*) AS total").
		Where("tanggal >= ? AND tanggal < ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("school_id").
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan katering")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"month": month,
		"year":  year,
		"rows":  rows,
	})
}

// GET /api/reports/feedback?month=&year=
// Rata-rata rating per sekolah, bahan evaluasi kualitas katering.
func (rc *ReportController) GetFeedbackReport(c *fiber.Ctx) error {
	start, end, month, year, err := monthRange(c)
	if err != nil {
		return err
	}

	type row struct {
		SchoolID string
		Avg      float64
		Total    int64
	}
	var rows []row
	if err := rc.DB.Model(&feedbackModel.FeedbackModel{}).
		Select("catering_logs.school_id AS school_id, AVG(feedbacks.rating) AS avg, COUNT(feedbacks.id) AS total").
		Joins("JOIN catering_logs ON catering_logs.id = feedbacks.catering_log_id").
		Where("feedbacks.timestamp >= ? AND feedbacks.timestamp < ?", start, end).
		Group("catering_logs.school_id").
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan feedback")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"month": month,
		"year":  year,
		"rows":  rows,
	})
}

// GET /api/reports/emergency?month=&year=
func (rc *ReportController) GetEmergencyReport(c *fiber.Ctx) error {
	start, end, month, year, err := monthRange(c)
	if err != nil {
		return err
	}

	type row struct {
		SchoolID string
		Status   string
		Total    int64
	}
	var rows []row
	if err := rc.DB.Model(&reportModel.EmergencyReportModel{}).
		Select("school_id, status, COUNT(*) AS total").
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Group("school_id, status").
		Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan darurat")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"month": month,
		"year":  year,
		"rows":  rows,
	})
}
