package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "mbg_backend/internals/features/attendance/attendance/model"
)

// SyncAttendanceRequest payload dari device absensi offline-first.
// Tag yang tidak dikenal dilewati, bukan menggagalkan seluruh batch.
type SyncAttendanceRequest struct {
	Records []SyncAttendanceRecord `json:"records" validate:"required,min=1,max=500,dive"`
}

type SyncAttendanceRecord struct {
	NfcTagID  string    `json:"nfc_tag_id" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

type SyncAttendanceResponse struct {
	Synced  int      `json:"synced"`
	Skipped []string `json:"skipped_tags,omitempty"`
}

// CreateAttendanceLogRequest satu tap realtime dari device.
type CreateAttendanceLogRequest struct {
	NfcTagID  string    `json:"nfc_tag_id" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

type AttendanceLogResponse struct {
	ID            uuid.UUID  `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	SyncTimestamp *time.Time `json:"sync_timestamp,omitempty"`
	UserID        uuid.UUID  `json:"user_id"`
	SchoolID      uuid.UUID  `json:"school_id"`
}

// RecapEntry satu baris rekap per siswa per hari.
type RecapEntry struct {
	UserID      uuid.UUID `json:"user_id"`
	NamaLengkap string    `json:"nama_lengkap"`
	Timestamp   time.Time `json:"timestamp"`
}

func ToAttendanceLogResponse(a attendanceModel.AttendanceLogModel) AttendanceLogResponse {
	return AttendanceLogResponse{
		ID:            a.ID,
		Timestamp:     a.Timestamp,
		SyncTimestamp: a.SyncTimestamp,
		UserID:        a.UserID,
		SchoolID:      a.SchoolID,
	}
}

func ToAttendanceLogResponses(logs []attendanceModel.AttendanceLogModel) []AttendanceLogResponse {
	out := make([]AttendanceLogResponse, 0, len(logs))
	for _, a := range logs {
		out = append(out, ToAttendanceLogResponse(a))
	}
	return out
}
