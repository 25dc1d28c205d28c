package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportBaru            = "BARU"
	ReportDitindaklanjuti = "DITINDAKLANJUTI"
	ReportSelesai         = "SELESAI"
)

// EmergencyReportModel: laporan darurat dari sekolah.
type EmergencyReportModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Deskripsi string    `gorm:"type:text;not null" json:"deskripsi"`
	Status    string    `gorm:"type:varchar(20);not null;default:'BARU';index" json:"status"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`

	UserID   uuid.UUID `gorm:"type:uuid;not null" json:"user_id"` // pelapor
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmergencyReportModel) TableName() string {
	return "emergency_reports"
}

func (m *EmergencyReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsValidReportStatus memvalidasi status laporan terhadap closed set.
func IsValidReportStatus(s string) bool {
	switch s {
	case ReportBaru, ReportDitindaklanjuti, ReportSelesai:
		return true
	}
	return false
}
