package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	ListListings(ctx context.Context) ([]job.Listing, error)
	FindByID(ctx context.Context, id string) (job.Listing, error)
	UpsertListings(ctx context.Context, listings []job.Listing) (int, error)
	ListUntagged(ctx context.Context, limit, offset int) ([]job.Listing, error)
	UpdateTags(ctx context.Context, id string, tags []string) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const listingColumns = `id::text, source, external_id, title, company, location, job_type, salary,
	description, tags, match_score, match_explanation, url, posted_at`

func scanListing(row database.Row) (job.Listing, error) {
	var l job.Listing
	err := row.Scan(
		&l.ID, &l.Source, &l.ExternalID, &l.Title, &l.Company, &l.Location, &l.Type, &l.Salary,
		&l.Description, &l.Tags, &l.MatchScore, &l.MatchExplanation, &l.URL, &l.PostedAt,
	)
	if l.Tags == nil {
		l.Tags = []string{}
	}
	return l, err
}

// ListListings returns the whole catalog, newest postings first.
func (r *PostgresJobRepository) ListListings(ctx context.Context) ([]job.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+`
		 FROM job_listings
		 ORDER BY posted_at DESC NULLS LAST, created_at DESC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	return collectListings(rows)
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id string) (job.Listing, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return job.Listing{}, ErrJobNotFound
	}
	l, err := scanListing(r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM job_listings WHERE id = $1`,
		strings.TrimSpace(id),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Listing{}, ErrJobNotFound
		}
		return job.Listing{}, err
	}
	return l, nil
}

// UpsertListings inserts or refreshes listings keyed by (source, external_id).
// Existing tags survive a refresh that carries none.
func (r *PostgresJobRepository) UpsertListings(ctx context.Context, listings []job.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	n := 0
	err := database.InTx(ctx, r.db, func(tx database.Querier) error {
		for _, l := range listings {
			if strings.TrimSpace(l.Title) == "" || strings.TrimSpace(l.ExternalID) == "" {
				continue
			}
			source := strings.TrimSpace(l.Source)
			if source == "" {
				source = "manual"
			}
			affected, err := tx.Exec(ctx,
				`INSERT INTO job_listings
					(source, external_id, title, company, location, job_type, salary, description,
					 tags, match_score, match_explanation, url, posted_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
				 ON CONFLICT (source, external_id) DO UPDATE SET
					title = EXCLUDED.title,
					company = EXCLUDED.company,
					location = EXCLUDED.location,
					job_type = EXCLUDED.job_type,
					salary = EXCLUDED.salary,
					description = EXCLUDED.description,
					tags = CASE WHEN cardinality(EXCLUDED.tags) > 0 THEN EXCLUDED.tags ELSE job_listings.tags END,
					match_score = EXCLUDED.match_score,
					match_explanation = EXCLUDED.match_explanation,
					url = EXCLUDED.url,
					posted_at = COALESCE(EXCLUDED.posted_at, job_listings.posted_at),
					updated_at = now()`,
				source, l.ExternalID, l.Title, l.Company, l.Location, l.Type, l.Salary, l.Description,
				nonNilTags(l.Tags), clampScore(l.MatchScore), l.MatchExplanation, l.URL, l.PostedAt,
			)
			if err != nil {
				return fmt.Errorf("upsert listing %s/%s: %w", source, l.ExternalID, err)
			}
			n += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) ListUntagged(ctx context.Context, limit, offset int) ([]job.Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+`
		 FROM job_listings
		 WHERE cardinality(tags) = 0
		 ORDER BY created_at ASC, id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectListings(rows)
}

func (r *PostgresJobRepository) UpdateTags(ctx context.Context, id string, tags []string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_listings SET tags = $2, updated_at = $3 WHERE id = $1`,
		id, nonNilTags(tags), time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func collectListings(rows database.Rows) ([]job.Listing, error) {
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNilTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
