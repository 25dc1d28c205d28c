// internals/features/users/user/service/registration_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mbg_backend/internals/constants"
	userModel "mbg_backend/internals/features/users/user/model"
	"mbg_backend/internals/helpers/notify"
)

var (
	ErrRegistrationNotFound = errors.New("registrasi tidak ditemukan")
	ErrAlreadyDecided       = errors.New("registrasi sudah diputuskan")
	ErrNotSelfService       = errors.New("user bukan pendaftar self-service")
	ErrSchoolScope          = errors.New("admin tidak satu sekolah dengan pendaftar")
)

type RegistrationDecision struct {
	Approve bool
	Reason  *string
}

// DecideRegistration memutuskan satu registrasi PENDING tepat satu kali.
// Guard transisinya bukan read-then-write: UPDATE bersyarat
// (WHERE registration_status = 'PENDING') dalam satu transaksi, sehingga
// dua reviewer yang balapan hanya satu yang menang; yang kalah dapat
// ErrAlreadyDecided. Audit record ditulis di transaksi yang sama.
func DecideRegistration(
	ctx context.Context,
	db *gorm.DB,
	notifier notify.Notifier,
	subjectID uuid.UUID,
	adminID uuid.UUID,
	adminRole string,
	adminSchoolID *uuid.UUID,
	decision RegistrationDecision,
) (*userModel.UserModel, error) {
	newStatus := userModel.RegistrationRejected
	if decision.Approve {
		newStatus = userModel.RegistrationApproved
	}

	var subject userModel.UserModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&subject, "id = ?", subjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		if !subject.NeedsApproval() {
			return ErrNotSelfService
		}

		// Hanya admin se-tenant (atau MASTERADMIN global) yang boleh memutus.
		if adminRole != constants.RoleMasterAdmin {
			if adminSchoolID == nil || subject.SchoolID == nil || *adminSchoolID != *subject.SchoolID {
				return ErrSchoolScope
			}
		}

		res := tx.Model(&userModel.UserModel{}).
			Where("id = ? AND registration_status = ?", subjectID, userModel.RegistrationPending).
			Update("registration_status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyDecided
		}

		audit := userModel.RegistrationAuditModel{
			UserID:  subjectID,
			AdminID: adminID,
			Status:  newStatus,
			Reason:  decision.Reason,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		subject.RegistrationStatus = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	kind := "registration.rejected"
	if decision.Approve {
		kind = "registration.approved"
	}
	note := ""
	if decision.Reason != nil {
		note = *decision.Reason
	}
	_ = notifier.Notify(ctx, notify.Event{
		Kind:      kind,
		SubjectID: subjectID.String(),
		ActorID:   adminID.String(),
		Note:      note,
		At:        time.Now(),
	})

	return &subject, nil
}
