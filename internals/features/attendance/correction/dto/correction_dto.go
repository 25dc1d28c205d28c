package dto

import (
	"time"

	"github.com/google/uuid"

	correctionModel "mbg_backend/internals/features/attendance/correction/model"
)

type CreateCorrectionRequest struct {
	AttendanceLogID string `json:"attendance_log_id" validate:"required,uuid4"`
	Reason          string `json:"reason" validate:"required,min=5,max=500"`
}

type ReviewCorrectionRequest struct {
	Approve    bool    `json:"approve"`
	ReviewNote *string `json:"review_note" validate:"omitempty,max=500"`
}

type CorrectionResponse struct {
	ID              uuid.UUID  `json:"id"`
	AttendanceLogID uuid.UUID  `json:"attendance_log_id"`
	UserID          uuid.UUID  `json:"user_id"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	AdminID         *uuid.UUID `json:"admin_id,omitempty"`
	ReviewNote      *string    `json:"review_note,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
}

func ToCorrectionResponse(m correctionModel.AttendanceCorrectionModel) CorrectionResponse {
	return CorrectionResponse{
		ID:              m.ID,
		AttendanceLogID: m.AttendanceLogID,
		UserID:          m.UserID,
		Reason:          m.Reason,
		Status:          m.Status,
		AdminID:         m.AdminID,
		ReviewNote:      m.ReviewNote,
		ReviewedAt:      m.ReviewedAt,
		RequestedAt:     m.RequestedAt,
	}
}

func ToCorrectionResponses(items []correctionModel.AttendanceCorrectionModel) []CorrectionResponse {
	out := make([]CorrectionResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToCorrectionResponse(m))
	}
	return out
}
