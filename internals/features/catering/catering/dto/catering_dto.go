package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	cateringModel "mbg_backend/internals/features/catering/catering/model"
)

// CreateCateringLogRequest datang sebagai multipart form.
// foto_menu diambil dari file, bukan field JSON.
type CreateCateringLogRequest struct {
	Tanggal       string  `form:"tanggal" validate:"required,datetime=2006-01-02"`
	DeskripsiMenu string  `form:"deskripsi_menu" validate:"required,min=3,max=500"`
	Catatan       *string `form:"catatan" validate:"omitempty,max=500"`
}

type CateringLogResponse struct {
	ID            uuid.UUID      `json:"id"`
	Tanggal       datatypes.Date `json:"tanggal"`
	DeskripsiMenu string         `json:"deskripsi_menu"`
	FotoMenuURL   string         `json:"foto_menu_url,omitempty"`
	Catatan       *string        `json:"catatan,omitempty"`
	UserID        uuid.UUID      `json:"user_id"`
	SchoolID      uuid.UUID      `json:"school_id"`
}

func ToCateringLogResponse(m cateringModel.CateringLogModel) CateringLogResponse {
	return CateringLogResponse{
		ID:            m.ID,
		Tanggal:       m.Tanggal,
		DeskripsiMenu: m.DeskripsiMenu,
		FotoMenuURL:   m.FotoMenuURL,
		Catatan:       m.Catatan,
		UserID:        m.UserID,
		SchoolID:      m.SchoolID,
	}
}

func ToCateringLogResponses(items []cateringModel.CateringLogModel) []CateringLogResponse {
	out := make([]CateringLogResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToCateringLogResponse(m))
	}
	return out
}
