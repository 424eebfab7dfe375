package dto

import "github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"

// JobMatchQuery mirrors the query string of GET /jobs/match.
type JobMatchQuery struct {
	Tags          []string `json:"tags" validate:"max=50,dive,max=100"`
	Location      string   `json:"location" validate:"max=200"`
	JobType       string   `json:"job_type" validate:"max=50"`
	MinSalary     int      `json:"min_salary" validate:"min=0"`
	MinMatchScore int      `json:"min_match_score" validate:"min=0,max=100"`
	Page          int      `json:"page" validate:"min=0,max=1000000"`
	Limit         int      `json:"limit" validate:"min=0,max=100"`
}

func (q JobMatchQuery) Filter() job.Filter {
	return job.Filter{
		Tags:          q.Tags,
		Location:      q.Location,
		JobType:       q.JobType,
		MinSalary:     q.MinSalary,
		MinMatchScore: q.MinMatchScore,
		Page:          q.Page,
		Limit:         q.Limit,
	}
}

type JobListingResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Tags             []string `json:"tags"`
	MatchScore       int      `json:"match_score"`
	MatchExplanation string   `json:"match_explanation"`
	URL              string   `json:"url,omitempty"`
	PostedDate       string   `json:"posted_date,omitempty"`
}

type JobMatchResponse struct {
	Results      []JobListingResponse `json:"results"`
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	TotalPages   int                  `json:"total_pages"`
	HasMore      bool                 `json:"has_more"`
	ResumeSkills []string             `json:"resume_skills"`
}
