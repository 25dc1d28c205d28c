package dto

import (
	"github.com/google/uuid"

	schoolModel "mbg_backend/internals/features/schools/school/model"
)

type CreateSchoolRequest struct {
	NamaSekolah string `json:"nama_sekolah" validate:"required,min=3,max=150"`
	Alamat      string `json:"alamat" validate:"required,min=3,max=255"`
}

type UpdateSchoolRequest struct {
	NamaSekolah *string `json:"nama_sekolah" validate:"omitempty,min=3,max=150"`
	Alamat      *string `json:"alamat" validate:"omitempty,min=3,max=255"`
}

// SchoolResponse tanpa api_key, key hanya keluar lewat endpoint khusus.
type SchoolResponse struct {
	ID          uuid.UUID `json:"id"`
	NamaSekolah string    `json:"nama_sekolah"`
	Alamat      string    `json:"alamat"`
}

// SchoolWithKeyResponse dipakai saat create dan rotate api key.
type SchoolWithKeyResponse struct {
	ID          uuid.UUID `json:"id"`
	NamaSekolah string    `json:"nama_sekolah"`
	Alamat      string    `json:"alamat"`
	APIKey      string    `json:"api_key"`
}

func ToSchoolResponse(s schoolModel.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:          s.ID,
		NamaSekolah: s.NamaSekolah,
		Alamat:      s.Alamat,
	}
}

func ToSchoolWithKeyResponse(s schoolModel.SchoolModel) SchoolWithKeyResponse {
	return SchoolWithKeyResponse{
		ID:          s.ID,
		NamaSekolah: s.NamaSekolah,
		Alamat:      s.Alamat,
		APIKey:      s.APIKey,
	}
}

func ToSchoolResponses(schools []schoolModel.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(schools))
	for _, s := range schools {
		out = append(out, ToSchoolResponse(s))
	}
	return out
}
