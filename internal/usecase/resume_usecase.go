package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/matching"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"

	"github.com/google/uuid"
)

// ResumeProfile is the stored resume with the skills read from it.
type ResumeProfile struct {
	Text             string                      `json:"text"`
	Skills           []string                    `json:"skills"`
	SkillsByCategory map[skill.Category][]string `json:"skills_by_category"`
}

type ResumeUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (ResumeProfile, error)
	Update(ctx context.Context, userID uuid.UUID, text string) (ResumeProfile, error)
}

type Resume struct {
	users     user.Repository
	extractor *skill.Extractor
	logger    *log.Logger
}

func NewResumeUsecase(users user.Repository, ex *skill.Extractor, logger *log.Logger) *Resume {
	if logger == nil {
		logger = log.Default()
	}
	return &Resume{users: users, extractor: ex, logger: logger}
}

func (u *Resume) Get(ctx context.Context, userID uuid.UUID) (ResumeProfile, error) {
	if userID == uuid.Nil {
		return ResumeProfile{}, ErrUnauthorized
	}
	if u == nil || u.users == nil || u.extractor == nil {
		return ResumeProfile{}, ErrInternal
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return ResumeProfile{}, err
	}
	return u.profile(usr.ResumeText), nil
}

// Update replaces the resume used for job matching and new applications.
// Existing applications keep the snapshot taken when they were created.
func (u *Resume) Update(ctx context.Context, userID uuid.UUID, text string) (ResumeProfile, error) {
	if userID == uuid.Nil {
		return ResumeProfile{}, ErrUnauthorized
	}
	if u == nil || u.users == nil || u.extractor == nil {
		return ResumeProfile{}, ErrInternal
	}
	text = strings.TrimSpace(text)
	if text == "" || len(text) > MaxTextBytes {
		return ResumeProfile{}, ErrInvalidInput
	}

	if err := u.users.UpdateResume(ctx, userID, text); err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			u.logger.Printf("usecase=resume action=update status=error user_id=%s err=%v", userID, err)
		}
		return ResumeProfile{}, err
	}

	p := u.profile(text)
	u.logger.Printf("usecase=resume action=update status=ok user_id=%s skills=%d", userID, len(p.Skills))
	return p, nil
}

func (u *Resume) profile(text string) ResumeProfile {
	skills := u.extractor.Extract(text)
	// Matching every extracted skill against itself groups them by category.
	grouped := matching.Calculate(u.extractor.Dictionary(), skill.NewSet(skills...), skills).MatchedByCategory
	return ResumeProfile{Text: text, Skills: skills, SkillsByCategory: grouped}
}
