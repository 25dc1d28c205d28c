package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CateringLogModel: log menu katering harian per sekolah.
type CateringLogModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Tanggal       datatypes.Date `gorm:"not null;index" json:"tanggal"`
	DeskripsiMenu string         `gorm:"type:text;not null" json:"deskripsi_menu"`
	FotoMenuURL   string         `gorm:"size:512;not null" json:"foto_menu_url"`
	Catatan       *string        `gorm:"type:text" json:"catatan,omitempty"`

	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"` // katering pembuat log
	SchoolID uuid.UUID `gorm:"type:uuid;not null;index" json:"school_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CateringLogModel) TableName() string {
	return "catering_logs"
}

func (m *CateringLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
