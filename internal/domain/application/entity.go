package application

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusSubmitted Status = "submitted"
	StatusPending   Status = "pending"
	StatusInterview Status = "interview"
	StatusOffered   Status = "offered"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

var ErrUnknownStatus = errors.New("unknown application status")

// Statuses returns the closed status enumeration in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusSaved,
		StatusApplied,
		StatusSubmitted,
		StatusPending,
		StatusInterview,
		StatusOffered,
		StatusAccepted,
		StatusRejected,
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// UnmarshalText normalizes decoded statuses and rejects unknown ones, so
// records read from JSON always land in a status bucket.
func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusSubmitted, StatusPending,
		StatusInterview, StatusOffered, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// InProgress reports statuses still awaiting an outcome.
func (s Status) InProgress() bool {
	switch s {
	case StatusApplied, StatusSubmitted, StatusPending, StatusInterview:
		return true
	}
	return false
}

func (s Status) Successful() bool {
	return s == StatusOffered || s == StatusAccepted
}

// JobSnapshot is the denormalized job copy frozen at application time.
type JobSnapshot struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title,omitempty"`
	Company        string   `json:"company,omitempty"`
	MatchScore     *int     `json:"match_score,omitempty"`
	MatchedSkills  []string `json:"matched_skills,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

type Application struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id,omitempty"`
	JobID          string       `json:"job_id,omitempty"`
	Status         Status       `json:"status"`
	AppliedDate    *time.Time   `json:"applied_date,omitempty"`
	AppliedAt      *time.Time   `json:"applied_at,omitempty"`
	UpdatedAt      *time.Time   `json:"updated_at,omitempty"`
	ResumeSnapshot string       `json:"resume_snapshot,omitempty"`
	MatchScore     *int         `json:"match_score,omitempty"`
	Company        string       `json:"company,omitempty"`
	Job            *JobSnapshot `json:"job,omitempty"`
}

// ActivityTime is the first available of applied date, applied-at and
// last update.
func (a Application) ActivityTime() (time.Time, bool) {
	for _, t := range []*time.Time{a.AppliedDate, a.AppliedAt, a.UpdatedAt} {
		if t != nil && !t.IsZero() {
			return *t, true
		}
	}
	return time.Time{}, false
}

// EffectiveMatchScore prefers the job snapshot score over the application's
// own score, and is 0 when neither is set.
func (a Application) EffectiveMatchScore() int {
	if a.Job != nil && a.Job.MatchScore != nil {
		return *a.Job.MatchScore
	}
	if a.MatchScore != nil {
		return *a.MatchScore
	}
	return 0
}

// CompanyLabel never returns an empty string.
func (a Application) CompanyLabel() string {
	if c := strings.TrimSpace(a.Company); c != "" {
		return c
	}
	if a.Job != nil {
		if c := strings.TrimSpace(a.Job.Company); c != "" {
			return c
		}
		if t := strings.TrimSpace(a.Job.Title); t != "" {
			return "Unknown (" + t + ")"
		}
	}
	return "Unknown Company"
}
