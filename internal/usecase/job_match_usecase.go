package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type JobMatchPage struct {
	job.Page
	ResumeSkills []string `json:"resume_skills"`
}

type JobMatchUsecase interface {
	MatchJobsWithResume(ctx context.Context, userID uuid.UUID, f job.Filter) (JobMatchPage, error)
}

type JobMatch struct {
	jobs      repository.JobRepository
	users     user.Repository
	extractor *skill.Extractor
	cache     Cache
	ttl       time.Duration
	logger    *log.Logger
}

func NewJobMatchUsecase(jobs repository.JobRepository, users user.Repository, ex *skill.Extractor, cache Cache, ttl time.Duration, logger *log.Logger) *JobMatch {
	if logger == nil {
		logger = log.Default()
	}
	return &JobMatch{jobs: jobs, users: users, extractor: ex, cache: cache, ttl: ttl, logger: logger}
}

// MatchJobsWithResume pages the catalog for the user. The stored resume is
// only reported back as extracted skills; listing scores are precomputed.
func (u *JobMatch) MatchJobsWithResume(ctx context.Context, userID uuid.UUID, f job.Filter) (JobMatchPage, error) {
	if userID == uuid.Nil {
		return JobMatchPage{}, ErrUnauthorized
	}
	if err := f.Validate(); err != nil {
		return JobMatchPage{}, ErrInvalidInput
	}
	f = f.Normalized()

	var (
		resume   string
		cached   job.Page
		hit      bool
		lockKey  string
		listings []job.Listing
	)
	cacheKey := JobsMatchCacheKey(f)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		usr, err := u.users.GetByID(gctx, userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil
			}
			return err
		}
		resume = usr.ResumeText
		return nil
	})
	g.Go(func() error {
		var err error
		cached, hit, lockKey = u.readThrough(gctx, cacheKey)
		if hit {
			return nil
		}
		listings, err = u.jobs.ListListings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Printf("usecase=job_match status=error user_id=%s err=%v", userID, err)
		if lockKey != "" {
			_ = u.cache.Delete(ctx, lockKey)
		}
		return JobMatchPage{}, ErrInternal
	}

	page := cached
	if !hit {
		page = job.MatchJobsWithResume(resume, listings, f)
		if u.cache != nil {
			if err := u.cache.SetJSON(ctx, cacheKey, page, u.ttl); err == nil {
				u.logger.Printf("[Jobs] Cache SET: %s", cacheKey)
			}
			if lockKey != "" {
				_ = u.cache.Delete(ctx, lockKey)
			}
		}
	}

	return JobMatchPage{Page: page, ResumeSkills: u.extractor.Extract(resume)}, nil
}

// readThrough returns a cached page when present. On a miss it takes the
// rebuild lock, or waits briefly for the holder to fill the key. lockKey is
// non-empty only when this caller holds the lock.
func (u *JobMatch) readThrough(ctx context.Context, cacheKey string) (job.Page, bool, string) {
	if u.cache == nil {
		return job.Page{}, false, ""
	}

	var cached job.Page
	if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
		return cached, true, ""
	}
	u.logger.Printf("[Jobs] Cache MISS: %s", cacheKey)

	lockKey := JobsMatchLockKey(cacheKey)
	ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
	if err != nil {
		return job.Page{}, false, ""
	}
	if ok {
		u.logger.Printf("[Jobs] Lock acquired: %s", lockKey)
		return job.Page{}, false, lockKey
	}

	jitter := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
	select {
	case <-ctx.Done():
		return job.Page{}, false, ""
	case <-time.After(300*time.Millisecond + jitter):
	}
	if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
		return cached, true, ""
	}
	u.logger.Printf("[Jobs] Lock wait fallback: %s", lockKey)
	return job.Page{}, false, ""
}
