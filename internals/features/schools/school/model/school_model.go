package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel: tenant MBG. APIKey dipakai perangkat absen (X-API-KEY),
// rahasia per sekolah, cocok-persis (tanpa prefix matching).
type SchoolModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NamaSekolah string    `gorm:"size:150;not null" json:"nama_sekolah" validate:"required,min=3,max=150"`
	Alamat      string    `gorm:"size:255;not null" json:"alamat" validate:"required"`
	APIKey      string    `gorm:"size:64;uniqueIndex;not null" json:"api_key"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}

func (s *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.APIKey == "" {
		s.APIKey = uuid.NewString()
	}
	return nil
}
