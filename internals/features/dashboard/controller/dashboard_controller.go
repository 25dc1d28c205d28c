package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	correctionModel "mbg_backend/internals/features/attendance/correction/model"
	cateringModel "mbg_backend/internals/features/catering/catering/model"
	reportModel "mbg_backend/internals/features/emergency/report/model"
	feedbackModel "mbg_backend/internals/features/feedback/feedback/model"
	schoolModel "mbg_backend/internals/features/schools/school/model"
	userModel "mbg_backend/internals/features/users/user/model"
	helpers "mbg_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard/admin — ringkasan global untuk admin/masteradmin.
func (dc *DashboardController) GetAdminDashboard(c *fiber.Ctx) error {
	var totalSchools, totalUsers, pendingRegistrations, pendingCorrections, openReports int64

	dc.DB.Model(&schoolModel.SchoolModel{}).Count(&totalSchools)
	dc.DB.Model(&userModel.UserModel{}).Count(&totalUsers)
	dc.DB.Model(&userModel.UserModel{}).
		Where("registration_status = ?", userModel.RegistrationPending).
		Count(&pendingRegistrations)
	dc.DB.Model(&correctionModel.AttendanceCorrectionModel{}).
		Where("status = ?", correctionModel.CorrectionPending).
		Count(&pendingCorrections)
	dc.DB.Model(&reportModel.EmergencyReportModel{}).
		Where("status = ?", reportModel.ReportBaru).
		Count(&openReports)

	return helpers.JsonOK(c, "ok", fiber.Map{
		"total_schools":         totalSchools,
		"total_users":           totalUsers,
		"pending_registrations": pendingRegistrations,
		"pending_corrections":   pendingCorrections,
		"open_emergency":        openReports,
	})
}

// GET /api/dashboard/school — ringkasan hari ini untuk sekolah si pemanggil.
func (dc *DashboardController) GetSchoolDashboard(c *fiber.Ctx) error {
	schoolID := helpers.GetSchoolIDFromToken(c)
	if schoolID == nil {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda tidak terhubung ke sekolah manapun")
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	today := time.Now().Format("2006-01-02")

	var totalStudents, attendanceToday, menusToday, openReports int64

	dc.DB.Model(&userModel.UserModel{}).
		Where("school_id = ? AND role = ?", *schoolID, constants.RoleSiswa).
		Count(&totalStudents)
	dc.DB.Model(&attendanceModel.AttendanceLogModel{}).
		Where("school_id = ? AND timestamp >= ?", *schoolID, startOfDay).
		Count(&attendanceToday)
	dc.DB.Model(&cateringModel.CateringLogModel{}).
		Where("school_id = ? AND tanggal = ?", *schoolID, today).
		Count(&menusToday)
	dc.DB.Model(&reportModel.EmergencyReportModel{}).
		Where("school_id = ? AND status = ?", *schoolID, reportModel.ReportBaru).
		Count(&openReports)

	return helpers.JsonOK(c, "ok", fiber.Map{
		"school_id":        schoolID,
		"total_students":   totalStudents,
		"attendance_today": attendanceToday,
		"menus_today":      menusToday,
		"open_emergency":   openReports,
	})
}

// GET /api/dashboard/catering — ringkasan performa katering yang login.
func (dc *DashboardController) GetCateringDashboard(c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var totalMenus int64
	dc.DB.Model(&cateringModel.CateringLogModel{}).
		Where("user_id = ?", userID).
		Count(&totalMenus)

	type ratingRow struct {
		Avg   float64
		Total int64
	}
	var rating ratingRow
	dc.DB.Model(&feedbackModel.FeedbackModel{}).
		Select("COALESCE(AVG(feedbacks.rating), 0) AS avg, COUNT(feedbacks.id) AS total").
		Joins("JOIN catering_logs ON catering_logs.id = feedbacks.catering_log_id").
		Where("catering_logs.user_id = ?", userID).
		Scan(&rating)

	return helpers.JsonOK(c, "ok", fiber.Map{
		"total_menus":    totalMenus,
		"average_rating": rating.Avg,
		"total_feedback": rating.Total,
	})
}
