package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status registrasi self-service. PENDING/REJECTED belum boleh dipakai
// untuk aksi ber-tenant; hanya APPROVED yang lolos Access Guard.
const (
	RegistrationPending  = "PENDING"
	RegistrationApproved = "APPROVED"
	RegistrationRejected = "REJECTED"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NamaLengkap string     `gorm:"size:100;not null" json:"nama_lengkap" validate:"required,min=3,max=100"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password    string     `gorm:"not null" json:"-" validate:"required,min=8"`
	Role        string     `gorm:"type:varchar(20);not null" json:"role" validate:"required,oneof=MASTERADMIN ADMIN SISWA SEKOLAH KATERING DINKES"`
	NfcTagID    *string    `gorm:"size:64;uniqueIndex" json:"nfc_tag_id,omitempty"`
	SchoolID    *uuid.UUID `gorm:"type:uuid;index" json:"school_id,omitempty"`

	RegistrationStatus string `gorm:"type:varchar(10);not null;default:'APPROVED'" json:"registration_status"`

	// State reset password sekali-pakai (OTP)
	ResetOTP          *string    `gorm:"size:12" json:"-"`
	ResetOTPExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// ID digenerate di aplikasi supaya tidak bergantung ke gen_random_uuid()
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// NeedsApproval: hanya role self-service yang melewati workflow registrasi.
func (u *UserModel) NeedsApproval() bool {
	return u.Role == "SISWA"
}

// IsUsable false kalau akun self-service belum/ tidak disetujui.
func (u *UserModel) IsUsable() bool {
	if !u.NeedsApproval() {
		return true
	}
	return u.RegistrationStatus == RegistrationApproved
}
