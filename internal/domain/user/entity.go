package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of a resume and an application history. Accounts are
// managed elsewhere; this service only reads the resume.
type User struct {
	ID         uuid.UUID
	Email      string
	FullName   string
	ResumeText string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
