package handler

import (
	"strings"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/dto"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/middleware"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pkg/response"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc        usecase.JobMatchUsecase
	validator *validator.Validate
}

func NewJobsHandler(uc usecase.JobMatchUsecase, v *validator.Validate) *JobsHandler {
	if v == nil {
		v = dto.NewValidator()
	}
	return &JobsHandler{uc: uc, validator: v}
}

// RegisterRoutes expects r to run the auth middleware first.
func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/match", h.HandleMatchJobs)
}

func (h *JobsHandler) HandleMatchJobs(c fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	q := dto.JobMatchQuery{
		Tags:     parseListQuery(c.Query("tags")),
		Location: strings.TrimSpace(c.Query("location")),
		JobType:  strings.TrimSpace(c.Query("job_type")),
	}
	if q.MinSalary, err = parseQueryIntStrict(c, "min_salary", 0); err != nil {
		return err
	}
	if q.MinMatchScore, err = parseQueryIntStrict(c, "min_match_score", 0); err != nil {
		return err
	}
	if q.Page, err = parseQueryIntStrict(c, "page", 1); err != nil {
		return err
	}
	if q.Limit, err = parseQueryIntStrict(c, "limit", 0); err != nil {
		return err
	}
	if err := validateRequest(h.validator, q); err != nil {
		return err
	}

	page, err := h.uc.MatchJobsWithResume(c.Context(), userID, q.Filter())
	if err != nil {
		return err
	}

	out := dto.JobMatchResponse{
		Results:      make([]dto.JobListingResponse, 0, len(page.Results)),
		Total:        page.Total,
		Page:         page.Page,
		TotalPages:   page.TotalPages,
		HasMore:      page.HasMore,
		ResumeSkills: page.ResumeSkills,
	}
	for _, l := range page.Results {
		posted := ""
		if l.PostedAt != nil && !l.PostedAt.IsZero() {
			posted = l.PostedAt.UTC().Format(time.RFC3339)
		}
		tags := l.Tags
		if tags == nil {
			tags = []string{}
		}
		out.Results = append(out.Results, dto.JobListingResponse{
			ID:               l.ID,
			Title:            l.Title,
			Company:          l.Company,
			Location:         l.Location,
			Type:             l.Type,
			Salary:           l.Salary,
			Description:      l.Description,
			Tags:             tags,
			MatchScore:       l.MatchScore,
			MatchExplanation: l.MatchExplanation,
			URL:              l.URL,
			PostedDate:       posted,
		})
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}
