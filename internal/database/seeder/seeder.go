package seeder

import (
	"context"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
)

// Seeder writes reference or demo rows. Seeders are idempotent.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
