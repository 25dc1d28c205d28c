package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackModel: penilaian siswa atas menu katering hari itu.
type FeedbackModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CateringLogID uuid.UUID `gorm:"type:uuid;not null;index" json:"catering_log_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Rating        int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Komentar      *string   `gorm:"type:text" json:"komentar,omitempty"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}

func (m *FeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
