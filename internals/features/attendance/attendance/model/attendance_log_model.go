package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceLogModel: satu tap absen dari perangkat sekolah.
// SchoolID selalu dari API key yang ter-resolve, bukan dari payload.
type AttendanceLogModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp     time.Time  `gorm:"not null;index" json:"timestamp"`
	SyncTimestamp *time.Time `json:"sync_timestamp,omitempty"`

	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AttendanceLogModel) TableName() string {
	return "attendance_logs"
}

func (l *AttendanceLogModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
