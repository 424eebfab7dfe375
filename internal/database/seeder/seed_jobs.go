package seeder

import (
	"context"
	"io"
	"log"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/catalog"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"
)

// SampleJobsSeeder loads the bundled five-listing catalog through the
// regular importer, so reseeding updates rows in place.
type SampleJobsSeeder struct{}

func (SampleJobsSeeder) Name() string { return "sample_jobs" }

func (SampleJobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_listings", "id", "source", "external_id", "title", "tags", "match_score"); err != nil {
		return err
	}
	imp := catalog.NewImporter(repository.NewPostgresJobRepository(db), nil, log.New(io.Discard, "", 0), catalog.NewSampleSource())
	_, err := imp.Run(ctx)
	return err
}
