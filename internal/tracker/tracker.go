package tracker

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("tracked application not found")

const schema = `
CREATE TABLE IF NOT EXISTS applications (
	id              TEXT PRIMARY KEY,
	job_id          TEXT NOT NULL DEFAULT '',
	title           TEXT NOT NULL,
	company         TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	match_score     INTEGER,
	required_skills TEXT NOT NULL DEFAULT '[]',
	matched_skills  TEXT NOT NULL DEFAULT '[]',
	applied_date    TEXT,
	applied_at      TEXT,
	updated_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_applications_updated_at ON applications (updated_at);
`

// Store keeps applications in a local sqlite file for offline use.
type Store struct {
	db       *sql.DB
	validate *validator.Validate
	now      func() time.Time
}

func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("tracker: empty database path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tracker: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tracker: init schema: %w", err)
	}
	return &Store{
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type AddInput struct {
	JobID          string     `validate:"max=100"`
	Title          string     `validate:"required,max=300"`
	Company        string     `validate:"max=300"`
	Status         string     `validate:"omitempty,max=20"`
	MatchScore     *int       `validate:"omitempty,min=0,max=100"`
	AppliedDate    *time.Time `validate:"omitempty"`
	RequiredSkills []string   `validate:"omitempty,dive,required"`
	MatchedSkills  []string   `validate:"omitempty,dive,required"`
}

// Add records a new application. Status defaults to applied; in-progress
// statuses stamp applied_at.
func (s *Store) Add(ctx context.Context, in AddInput) (application.Application, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	if err := s.validate.Struct(in); err != nil {
		return application.Application{}, fmt.Errorf("tracker: invalid input: %w", err)
	}

	status := application.StatusApplied
	if strings.TrimSpace(in.Status) != "" {
		st, err := application.ParseStatus(in.Status)
		if err != nil {
			return application.Application{}, err
		}
		status = st
	}

	now := s.now()
	var appliedAt *time.Time
	if status.InProgress() {
		appliedAt = &now
	}

	req, err := json.Marshal(nonNil(in.RequiredSkills))
	if err != nil {
		return application.Application{}, err
	}
	matched, err := json.Marshal(nonNil(in.MatchedSkills))
	if err != nil {
		return application.Application{}, err
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO applications (id, job_id, title, company, status, match_score, required_skills, matched_skills, applied_date, applied_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(in.JobID), in.Title, in.Company, string(status), nullInt(in.MatchScore),
		string(req), string(matched), formatTime(in.AppliedDate), formatTime(appliedAt), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return application.Application{}, fmt.Errorf("tracker: insert: %w", err)
	}
	return s.get(ctx, id)
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) (application.Application, error) {
	st, err := application.ParseStatus(status)
	if err != nil {
		return application.Application{}, err
	}
	now := s.now().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET status = ?,
		    updated_at = ?,
		    applied_at = CASE WHEN ? AND applied_at IS NULL THEN ? ELSE applied_at END
		WHERE id = ?`,
		string(st), now, st.InProgress(), now, strings.TrimSpace(id),
	)
	if err != nil {
		return application.Application{}, fmt.Errorf("tracker: update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return application.Application{}, err
	}
	if n == 0 {
		return application.Application{}, ErrNotFound
	}
	return s.get(ctx, id)
}

// List returns every tracked application, most recently updated first.
func (s *Store) List(ctx context.Context) ([]application.Application, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("tracker: list: %w", err)
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
	return out, rows.Err()
}

const selectColumns = `
	SELECT id, job_id, title, company, status, match_score, required_skills, matched_skills, applied_date, applied_at, updated_at
	FROM applications`

func (s *Store) get(ctx context.Context, id string) (application.Application, error) {
	a, err := scanApplication(s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return application.Application{}, ErrNotFound
	}
	return a, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(row scanner) (application.Application, error) {
	var (
		a                      application.Application
		title, company, status string
		score                  sql.NullInt64
		req, matched           string
		appliedDate, appliedAt sql.NullString
		updatedAt              string
	)
	if err := row.Scan(&a.ID, &a.JobID, &title, &company, &status, &score, &req, &matched, &appliedDate, &appliedAt, &updatedAt); err != nil {
		return application.Application{}, err
	}

	snap := &application.JobSnapshot{ID: a.JobID, Title: title, Company: company}
	if err := json.Unmarshal([]byte(req), &snap.RequiredSkills); err != nil {
		return application.Application{}, fmt.Errorf("tracker: required_skills: %w", err)
	}
	if err := json.Unmarshal([]byte(matched), &snap.MatchedSkills); err != nil {
		return application.Application{}, fmt.Errorf("tracker: matched_skills: %w", err)
	}
	if score.Valid {
		v := int(score.Int64)
		snap.MatchScore = &v
		a.MatchScore = &v
	}

	a.Status = application.Status(status)
	a.Company = company
	a.Job = snap
	a.AppliedDate = parseTime(appliedDate)
	a.AppliedAt = parseTime(appliedAt)
	a.UpdatedAt = parseTime(sql.NullString{String: updatedAt, Valid: true})
	return a, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func formatTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s sql.NullString) *time.Time {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil
	}
	return &t
}
