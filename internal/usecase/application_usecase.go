package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/matching"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ApplicationNotifier is told after a user's applications change.
type ApplicationNotifier interface {
	NotifyApplicationsUpdated(userID, action string)
}

type ApplyInput struct {
	JobID       string
	Status      string
	AppliedDate *time.Time
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID uuid.UUID, in ApplyInput) (application.Application, error)
	List(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, id, status string) (application.Application, error)
}

type Applications struct {
	apps      repository.ApplicationRepository
	jobs      repository.JobRepository
	users     user.Repository
	extractor *skill.Extractor
	cache     Cache
	notifier  ApplicationNotifier
	logger    *log.Logger
	now       func() time.Time
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	users user.Repository,
	ex *skill.Extractor,
	cache Cache,
	notifier ApplicationNotifier,
	logger *log.Logger,
) *Applications {
	if logger == nil {
		logger = log.Default()
	}
	return &Applications{
		apps:      apps,
		jobs:      jobs,
		users:     users,
		extractor: ex,
		cache:     cache,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Apply records an application and freezes a copy of the resume and the job,
// including which of the job's skills the resume covered at that moment.
func (u *Applications) Apply(ctx context.Context, userID uuid.UUID, in ApplyInput) (application.Application, error) {
	if userID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}
	jobID, err := uuid.Parse(strings.TrimSpace(in.JobID))
	if err != nil {
		return application.Application{}, ErrInvalidInput
	}
	status := application.StatusApplied
	if strings.TrimSpace(in.Status) != "" {
		status, err = application.ParseStatus(in.Status)
		if err != nil {
			return application.Application{}, ErrInvalidInput
		}
	}

	var (
		resume  string
		listing job.Listing
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		usr, err := u.users.GetByID(gctx, userID)
		if err != nil {
			return err
		}
		resume = usr.ResumeText
		return nil
	})
	g.Go(func() error {
		l, err := u.jobs.FindByID(gctx, jobID.String())
		if err != nil {
			return err
		}
		listing = l
		return nil
	})
	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			return application.Application{}, ErrJobNotFound
		case errors.Is(err, ErrUserNotFound):
			return application.Application{}, ErrUserNotFound
		}
		u.logger.Printf("usecase=application op=apply status=error user_id=%s job_id=%s err=%v", userID, jobID, err)
		return application.Application{}, ErrInternal
	}

	now := u.now().UTC()
	appliedDate := in.AppliedDate
	if appliedDate == nil && status != application.StatusSaved {
		appliedDate = &now
	}
	var appliedAt *time.Time
	if status.InProgress() {
		appliedAt = &now
	}

	snapshot := u.snapshot(listing, resume)
	a := application.Application{
		UserID:         userID.String(),
		JobID:          jobID.String(),
		Status:         status,
		AppliedDate:    appliedDate,
		AppliedAt:      appliedAt,
		ResumeSnapshot: resume,
		MatchScore:     snapshot.MatchScore,
		Company:        listing.Company,
		Job:            &snapshot,
	}

	created, err := u.apps.Create(ctx, a)
	if err != nil {
		if errors.Is(err, ErrAlreadyApplied) {
			return application.Application{}, ErrAlreadyApplied
		}
		u.logger.Printf("usecase=application op=apply status=error user_id=%s job_id=%s err=%v", userID, jobID, err)
		return application.Application{}, ErrInternal
	}

	u.afterWrite(ctx, userID, "created")
	u.logger.Printf("usecase=application op=apply status=ok user_id=%s job_id=%s application_id=%s", userID, jobID, created.ID)
	return created, nil
}

func (u *Applications) snapshot(l job.Listing, resume string) application.JobSnapshot {
	required := make([]string, 0, len(l.Tags))
	for _, t := range l.Tags {
		if t = skill.Normalize(t); t != "" {
			required = append(required, t)
		}
	}
	dict := u.extractor.Dictionary()
	res := matching.Calculate(dict, u.extractor.ExtractSet(resume), canonicalSkills(dict, required))

	score := l.MatchScore
	return application.JobSnapshot{
		ID:             l.ID,
		Title:          l.Title,
		Company:        l.Company,
		MatchScore:     &score,
		MatchedSkills:  res.Matched,
		RequiredSkills: required,
	}
}

func (u *Applications) List(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.apps.ListByUser(ctx, userID.String())
	if err != nil {
		u.logger.Printf("usecase=application op=list status=error user_id=%s err=%v", userID, err)
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, userID uuid.UUID, id, status string) (application.Application, error) {
	if userID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}
	st, err := application.ParseStatus(status)
	if err != nil {
		return application.Application{}, ErrInvalidInput
	}
	if strings.TrimSpace(id) == "" {
		return application.Application{}, ErrInvalidInput
	}

	updated, err := u.apps.UpdateStatus(ctx, userID.String(), strings.TrimSpace(id), st)
	if err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		u.logger.Printf("usecase=application op=update_status status=error user_id=%s application_id=%s err=%v", userID, id, err)
		return application.Application{}, ErrInternal
	}

	u.afterWrite(ctx, userID, "status_updated")
	return updated, nil
}

func (u *Applications) afterWrite(ctx context.Context, userID uuid.UUID, action string) {
	if u.cache != nil {
		if err := u.cache.Delete(ctx, AnalyticsCacheKey(userID.String())); err != nil {
			u.logger.Printf("[Cache] analytics invalidate error user_id=%s err=%v", userID, err)
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyApplicationsUpdated(userID.String(), action)
	}
}
