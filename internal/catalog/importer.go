package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
)

// Source yields raw catalog listings.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]job.Listing, error)
}

type ListingStore interface {
	UpsertListings(ctx context.Context, listings []job.Listing) (int, error)
}

// CacheInvalidator drops cached job pages once the catalog changes.
type CacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type SourceReport struct {
	Source   string        `json:"source"`
	Fetched  int           `json:"fetched"`
	Upserted int           `json:"upserted"`
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

type Importer struct {
	sources []Source
	store   ListingStore
	cache   CacheInvalidator
	logger  *log.Logger
}

func NewImporter(store ListingStore, cache CacheInvalidator, logger *log.Logger, sources ...Source) *Importer {
	if logger == nil {
		logger = log.Default()
	}
	return &Importer{sources: sources, store: store, cache: cache, logger: logger}
}

// Run imports every source in turn. Per-source failures are reported and do
// not stop later sources; the returned error joins them.
func (i *Importer) Run(ctx context.Context) ([]SourceReport, error) {
	if i == nil || i.store == nil {
		return nil, fmt.Errorf("nil importer/store")
	}

	reports := make([]SourceReport, 0, len(i.sources))
	var errs []error
	changed := false

	for _, src := range i.sources {
		if src == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		start := time.Now()
		rep := SourceReport{Source: src.Name()}

		listings, err := src.Fetch(ctx)
		if err == nil {
			rep.Fetched = len(listings)
			for idx := range listings {
				if listings[idx].Source == "" {
					listings[idx].Source = src.Name()
				}
				if listings[idx].ExternalID == "" {
					listings[idx].ExternalID = stableExternalID(listings[idx])
				}
			}
			rep.Upserted, err = i.store.UpsertListings(ctx, listings)
		}
		rep.Duration = time.Since(start)

		if err != nil {
			rep.Err = err.Error()
			errs = append(errs, fmt.Errorf("import %s: %w", src.Name(), err))
			i.logger.Printf("catalog=import status=error source=%s err=%v duration=%s", rep.Source, err, rep.Duration)
		} else {
			i.logger.Printf("catalog=import status=ok source=%s fetched=%d upserted=%d duration=%s", rep.Source, rep.Fetched, rep.Upserted, rep.Duration)
		}
		if rep.Upserted > 0 {
			changed = true
		}
		reports = append(reports, rep)
	}

	if changed && i.cache != nil {
		if err := i.cache.DeleteByPattern(ctx, "jobs:match:*"); err != nil {
			i.logger.Printf("catalog=import status=cache_invalidate_error err=%v", err)
		}
	}

	return reports, errors.Join(errs...)
}
