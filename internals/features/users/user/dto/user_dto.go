package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "mbg_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	NamaLengkap string  `json:"nama_lengkap" validate:"required,min=3,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required,oneof=ADMIN SISWA SEKOLAH KATERING DINKES"`
	NfcTagID    *string `json:"nfc_tag_id"`
	SchoolID    *string `json:"school_id"`
}

type UpdateUserRequest struct {
	NamaLengkap *string `json:"nama_lengkap" validate:"omitempty,min=3,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	Role        *string `json:"role" validate:"omitempty,oneof=ADMIN SISWA SEKOLAH KATERING DINKES"`
	NfcTagID    *string `json:"nfc_tag_id"`
	SchoolID    *string `json:"school_id"`
}

type RegistrationDecisionRequest struct {
	Approve bool    `json:"approve"`
	Reason  *string `json:"reason"`
}

type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	NamaLengkap        string     `json:"nama_lengkap"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	NfcTagID           *string    `json:"nfc_tag_id,omitempty"`
	SchoolID           *uuid.UUID `json:"school_id,omitempty"`
	RegistrationStatus string     `json:"registration_status"`
	CreatedAt          time.Time  `json:"created_at"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		NamaLengkap:        u.NamaLengkap,
		Email:              u.Email,
		Role:               u.Role,
		NfcTagID:           u.NfcTagID,
		SchoolID:           u.SchoolID,
		RegistrationStatus: u.RegistrationStatus,
		CreatedAt:          u.CreatedAt,
	}
}

func ToUserResponses(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
