package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNoDB
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Printf("seeder=%s status=ok duration=%s", s.Name(), time.Since(start))
	}
	return nil
}
