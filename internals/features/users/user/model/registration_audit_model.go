package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationAuditModel: jejak keputusan registrasi, append-only.
// Tidak pernah di-update atau dihapus oleh workflow.
type RegistrationAuditModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	AdminID uuid.UUID `gorm:"type:uuid;not null" json:"admin_id"`
	Status  string    `gorm:"type:varchar(10);not null" json:"status"` // APPROVED / REJECTED
	Reason  *string   `gorm:"type:text" json:"reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RegistrationAuditModel) TableName() string {
	return "registration_audit"
}

func (a *RegistrationAuditModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
