package usecase

import (
	"errors"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
)

// Storage sentinels pass through unchanged so callers can match them with
// errors.Is without importing the repository package.
var (
	ErrJobNotFound         = repository.ErrJobNotFound
	ErrApplicationNotFound = repository.ErrApplicationNotFound
	ErrAlreadyApplied      = repository.ErrAlreadyApplied
	ErrUserNotFound        = user.ErrNotFound
)
