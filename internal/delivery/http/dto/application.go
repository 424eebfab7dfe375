package dto

import (
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"
)

type ApplyRequest struct {
	JobID       string     `json:"job_id" validate:"required,uuid"`
	Status      string     `json:"status" validate:"omitempty,max=20"`
	AppliedDate *time.Time `json:"applied_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id,omitempty"`
	Status      string                   `json:"status"`
	Company     string                   `json:"company"`
	MatchScore  int                      `json:"match_score"`
	AppliedDate string                   `json:"applied_date,omitempty"`
	UpdatedAt   string                   `json:"updated_at,omitempty"`
	Job         *application.JobSnapshot `json:"job,omitempty"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	out := ApplicationResponse{
		ID:         a.ID,
		JobID:      a.JobID,
		Status:     string(a.Status),
		Company:    a.CompanyLabel(),
		MatchScore: a.EffectiveMatchScore(),
		Job:        a.Job,
	}
	if a.AppliedDate != nil && !a.AppliedDate.IsZero() {
		out.AppliedDate = a.AppliedDate.UTC().Format(time.RFC3339)
	}
	if a.UpdatedAt != nil && !a.UpdatedAt.IsZero() {
		out.UpdatedAt = a.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
