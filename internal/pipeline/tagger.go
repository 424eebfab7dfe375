package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
)

type TagStore interface {
	ListUntagged(ctx context.Context, limit, offset int) ([]job.Listing, error)
	UpdateTags(ctx context.Context, id string, tags []string) error
}

type TagParams struct {
	Workers       int
	BatchSize     int
	RatePerSecond int
}

type TagReport struct {
	Scanned  int           `json:"scanned"`
	Tagged   int           `json:"tagged"`
	NoSkills int           `json:"no_skills"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

var errNoSkills = errors.New("no dictionary skills in listing")

// Tagger fills empty listing tags with skills extracted from the listing's
// title and description.
type Tagger struct {
	store TagStore
	ex    *skill.Extractor
	log   *log.Logger
}

func NewTagger(store TagStore, ex *skill.Extractor, logger *log.Logger) *Tagger {
	if logger == nil {
		logger = log.Default()
	}
	return &Tagger{store: store, ex: ex, log: logger}
}

// Run walks untagged listings batch by batch. Listings that stay untagged
// (no skills found, or a failed update) are skipped by advancing the offset.
func (t *Tagger) Run(ctx context.Context, params TagParams) (TagReport, error) {
	start := time.Now()
	var rep TagReport
	if t == nil || t.store == nil || t.ex == nil {
		return rep, fmt.Errorf("nil tagger/store/extractor")
	}

	workers := params.Workers
	if workers <= 0 {
		workers = 4
	}
	limit := params.BatchSize
	if limit <= 0 {
		limit = 100
	}

	offset := 0
	for {
		if err := ctx.Err(); err != nil {
			rep.Duration = time.Since(start)
			return rep, err
		}

		batch, err := t.store.ListUntagged(ctx, limit, offset)
		if err != nil {
			rep.Duration = time.Since(start)
			return rep, err
		}
		if len(batch) == 0 {
			break
		}
		rep.Scanned += len(batch)

		pool := NewWorkerPool(workers, workers*2)
		pool.SetRateLimit(params.RatePerSecond)
		results := pool.Run(ctx)

		go func() {
			defer pool.Close()
			for _, l := range batch {
				l := l
				if !pool.Submit(ctx, l.ID, func(ctx context.Context) error { return t.tagOne(ctx, l) }) {
					return
				}
			}
		}()

		stillUntagged := 0
		for r := range results {
			switch {
			case r.Err == nil:
				rep.Tagged++
			case errors.Is(r.Err, errNoSkills):
				rep.NoSkills++
				stillUntagged++
			default:
				rep.Failed++
				stillUntagged++
				t.log.Printf("pipeline=tagging status=error job_id=%s err=%v", r.ID, r.Err)
			}
		}
		if err := ctx.Err(); err != nil {
			rep.Duration = time.Since(start)
			return rep, err
		}
		offset += stillUntagged
	}

	rep.Duration = time.Since(start)
	t.log.Printf("pipeline=tagging status=done scanned=%d tagged=%d no_skills=%d failed=%d duration=%s", rep.Scanned, rep.Tagged, rep.NoSkills, rep.Failed, rep.Duration)
	return rep, nil
}

func (t *Tagger) tagOne(ctx context.Context, l job.Listing) error {
	text := strings.TrimSpace(l.Title + "\n" + l.Description)
	tags := t.ex.Extract(text)
	if len(tags) == 0 {
		return errNoSkills
	}
	return t.store.UpdateTags(ctx, l.ID, tags)
}
