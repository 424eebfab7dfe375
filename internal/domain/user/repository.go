package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Upsert(ctx context.Context, u User) (User, error)
	UpdateResume(ctx context.Context, id uuid.UUID, resumeText string) error
}
