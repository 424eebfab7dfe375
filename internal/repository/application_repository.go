package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
)

const pgUniqueViolation = "23505"

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (application.Application, error)
	ListByUser(ctx context.Context, userID string) ([]application.Application, error)
	UpdateStatus(ctx context.Context, userID, id string, status application.Status) (application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id::text, user_id::text, COALESCE(job_id::text, ''), status, applied_date, applied_at,
	updated_at, resume_snapshot, match_score, company, job_snapshot`

func scanApplication(row database.Row) (application.Application, error) {
	var (
		a        application.Application
		status   string
		snapshot []byte
	)
	if err := row.Scan(
		&a.ID, &a.UserID, &a.JobID, &status, &a.AppliedDate, &a.AppliedAt,
		&a.UpdatedAt, &a.ResumeSnapshot, &a.MatchScore, &a.Company, &snapshot,
	); err != nil {
		return application.Application{}, err
	}
	// Rows are read back verbatim; an unexpected status stays visible to
	// analytics instead of failing the whole listing.
	a.Status = application.Status(status)
	if len(snapshot) > 0 {
		var js application.JobSnapshot
		if err := json.Unmarshal(snapshot, &js); err != nil {
			return application.Application{}, fmt.Errorf("decode job snapshot for %s: %w", a.ID, err)
		}
		a.Job = &js
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	var snapshot []byte
	if a.Job != nil {
		b, err := json.Marshal(a.Job)
		if err != nil {
			return application.Application{}, err
		}
		snapshot = b
	}

	var jobID any
	if id := strings.TrimSpace(a.JobID); id != "" {
		jobID = id
	}

	created, err := scanApplication(r.db.QueryRow(ctx,
		`INSERT INTO job_applications
			(user_id, job_id, status, applied_date, applied_at, resume_snapshot, match_score, company, job_snapshot)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+applicationColumns,
		a.UserID, jobID, string(a.Status), a.AppliedDate, a.AppliedAt, a.ResumeSnapshot, a.MatchScore, a.Company, snapshot,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID string) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM job_applications
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus only touches applications owned by userID. Moving into an
// applied state stamps applied_at once.
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, userID, id string, status application.Status) (application.Application, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return application.Application{}, ErrApplicationNotFound
	}
	a, err := scanApplication(r.db.QueryRow(ctx,
		`UPDATE job_applications SET
			status = $3,
			applied_at = CASE WHEN $4::boolean AND applied_at IS NULL THEN now() ELSE applied_at END,
			updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+applicationColumns,
		strings.TrimSpace(id), userID, string(status), status.InProgress(),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}
