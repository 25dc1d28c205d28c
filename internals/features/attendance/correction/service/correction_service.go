// internals/features/attendance/correction/service/correction_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
	correctionModel "mbg_backend/internals/features/attendance/correction/model"
	"mbg_backend/internals/helpers/notify"
)

var (
	ErrLogNotFound        = errors.New("log absensi tidak ditemukan")
	ErrCorrectionNotFound = errors.New("pengajuan koreksi tidak ditemukan")
	ErrNotLogOwner        = errors.New("pemohon bukan pemilik log absensi")
	ErrAlreadyReviewed    = errors.New("koreksi sudah direview")
	ErrSchoolScope        = errors.New("admin tidak satu sekolah dengan log yang dikoreksi")
)

// CreateCorrection membuat pengajuan koreksi PENDING.
// Pemilik koreksi diturunkan dari log yang dirujuk, bukan dari payload,
// dan pemohon wajib pemilik log itu sendiri.
func CreateCorrection(
	ctx context.Context,
	db *gorm.DB,
	notifier notify.Notifier,
	requesterID uuid.UUID,
	attendanceLogID uuid.UUID,
	reason string,
) (*correctionModel.AttendanceCorrectionModel, error) {
	var logEntry attendanceModel.AttendanceLogModel
	if err := db.First(&logEntry, "id = ?", attendanceLogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	if logEntry.UserID != requesterID {
		return nil, ErrNotLogOwner
	}

	correction := correctionModel.AttendanceCorrectionModel{
		AttendanceLogID: logEntry.ID,
		UserID:          logEntry.UserID,
		Reason:          reason,
		Status:          correctionModel.CorrectionPending,
	}
	if err := db.Create(&correction).Error; err != nil {
		return nil, err
	}

	_ = notifier.Notify(ctx, notify.Event{
		Kind:      "correction.submitted",
		SubjectID: correction.ID.String(),
		ActorID:   requesterID.String(),
		Note:      reason,
		At:        time.Now(),
	})

	return &correction, nil
}

type CorrectionReview struct {
	Approve bool
	Note    *string
}

// ReviewCorrection memutuskan satu koreksi PENDING tepat satu kali,
// dengan UPDATE bersyarat seperti alur persetujuan registrasi. Reviewer
// kedua dapat ErrAlreadyReviewed. Hanya admin yang satu sekolah dengan
// log yang dirujuk (atau MASTERADMIN global) yang boleh memutus.
// Keputusan APPROVE tidak mengubah log absensi yang dirujuk; approval
// hanya tercatat pada record koreksinya.
func ReviewCorrection(
	ctx context.Context,
	db *gorm.DB,
	notifier notify.Notifier,
	correctionID uuid.UUID,
	adminID uuid.UUID,
	adminRole string,
	adminSchoolID *uuid.UUID,
	review CorrectionReview,
) (*correctionModel.AttendanceCorrectionModel, error) {
	newStatus := correctionModel.CorrectionRejected
	if review.Approve {
		newStatus = correctionModel.CorrectionApproved
	}
	now := time.Now().UTC()

	var correction correctionModel.AttendanceCorrectionModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&correction, "id = ?", correctionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCorrectionNotFound
			}
			return err
		}

		// Scope tenant dari log yang dirujuk, bukan dari payload.
		if adminRole != constants.RoleMasterAdmin {
			var logEntry attendanceModel.AttendanceLogModel
			if err := tx.First(&logEntry, "id = ?", correction.AttendanceLogID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrLogNotFound
				}
				return err
			}
			if adminSchoolID == nil || *adminSchoolID != logEntry.SchoolID {
				return ErrSchoolScope
			}
		}

		res := tx.Model(&correctionModel.AttendanceCorrectionModel{}).
			Where("id = ? AND status = ?", correctionID, correctionModel.CorrectionPending).
			Updates(map[string]any{
				"status":      newStatus,
				"admin_id":    adminID,
				"review_note": review.Note,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyReviewed
		}

		correction.Status = newStatus
		correction.AdminID = &adminID
		correction.ReviewNote = review.Note
		correction.ReviewedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	kind := "correction.rejected"
	if review.Approve {
		kind = "correction.approved"
	}
	note := ""
	if review.Note != nil {
		note = *review.Note
	}
	_ = notifier.Notify(ctx, notify.Event{
		Kind:      kind,
		SubjectID: correctionID.String(),
		ActorID:   adminID.String(),
		Note:      note,
		At:        time.Now(),
	})

	return &correction, nil
}
