package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CorrectionPending  = "PENDING"
	CorrectionApproved = "APPROVED"
	CorrectionRejected = "REJECTED"
)

// AttendanceCorrectionModel: permohonan koreksi atas satu attendance log.
// Transisi terminal tepat satu kali (PENDING -> APPROVED/REJECTED);
// review ulang ditolak sebagai conflict. Persetujuan TIDAK mengubah
// attendance log aslinya.
type AttendanceCorrectionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AttendanceLogID uuid.UUID `gorm:"type:uuid;not null;index" json:"attendance_log_id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"` // pemilik log, diturunkan dari log
	Reason          string    `gorm:"type:text;not null" json:"reason"`
	Status          string    `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`

	AdminID    *uuid.UUID `gorm:"type:uuid" json:"admin_id,omitempty"`
	ReviewNote *string    `gorm:"type:text" json:"review_note,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`

	RequestedAt time.Time `gorm:"autoCreateTime" json:"requested_at"`
}

func (AttendanceCorrectionModel) TableName() string {
	return "attendance_corrections"
}

func (m *AttendanceCorrectionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
