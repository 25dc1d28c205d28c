package dto

import (
	"time"

	"github.com/google/uuid"

	feedbackModel "mbg_backend/internals/features/feedback/feedback/model"
)

type CreateFeedbackRequest struct {
	CateringLogID string  `json:"catering_log_id" validate:"required,uuid4"`
	Rating        int     `json:"rating" validate:"required,min=1,max=5"`
	Komentar      *string `json:"komentar" validate:"omitempty,max=500"`
}

type FeedbackResponse struct {
	ID            uuid.UUID `json:"id"`
	CateringLogID uuid.UUID `json:"catering_log_id"`
	UserID        uuid.UUID `json:"user_id"`
	Rating        int       `json:"rating"`
	Komentar      *string   `json:"komentar,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func ToFeedbackResponse(m feedbackModel.FeedbackModel) FeedbackResponse {
	return FeedbackResponse{
		ID:            m.ID,
		CateringLogID: m.CateringLogID,
		UserID:        m.UserID,
		Rating:        m.Rating,
		Komentar:      m.Komentar,
		Timestamp:     m.Timestamp,
	}
}

func ToFeedbackResponses(items []feedbackModel.FeedbackModel) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ToFeedbackResponse(m))
	}
	return out
}
