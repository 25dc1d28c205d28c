package dto

import (
	"time"

	"github.com/google/uuid"

	reportModel "mbg_backend/internals/features/emergency/report/model"
)

type CreateEmergencyReportRequest struct {
	Deskripsi string `json:"deskripsi" validate:"required,min=5,max=1000"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type EmergencyReportResponse struct {
	ID        uuid.UUID `json:"id"`
	Deskripsi string    `json:"deskripsi"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uuid.UUID `json:"user_id"`
	SchoolID  uuid.UUID `json:"school_id"`
}

func ToEmergencyReportResponse(m reportModel.EmergencyReportModel) EmergencyReportResponse {
	return EmergencyReportResponse{
		ID:        m.ID,
		Deskripsi: m.Deskripsi,
		Status:    m.Status,
		Timestamp: m.Timestamp,
		UserID:    m.UserID,
		SchoolID:  m.SchoolID,
	}
}

func ToEmergencyReportResponses(items []reportModel.EmergencyReportModel) []EmergencyReportResponse {
	out := make([]EmergencyReportResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToEmergencyReportResponse(m))
	}
	return out
}
