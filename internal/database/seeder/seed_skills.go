package seeder

import (
	"context"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"
)

type SkillsSeeder struct {
	Definitions []skill.Definition
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "aliases", "weight", "position"); err != nil {
		return err
	}
	_, err := repository.NewPostgresSkillRepository(db).UpsertDefinitions(ctx, s.Definitions)
	return err
}
