package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
)

type SkillRepository interface {
	ListDefinitions(ctx context.Context) ([]skill.Definition, error)
	UpsertDefinitions(ctx context.Context, defs []skill.Definition) (int, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// ListDefinitions returns stored definitions in dictionary order.
func (r *PostgresSkillRepository) ListDefinitions(ctx context.Context) ([]skill.Definition, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, category, aliases, weight
		 FROM skills
		 ORDER BY position ASC, name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Definition, 0)
	for rows.Next() {
		var (
			d        skill.Definition
			category string
		)
		if err := rows.Scan(&d.Name, &category, &d.Aliases, &d.Weight); err != nil {
			return nil, err
		}
		d.Category = skill.Category(category)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertDefinitions writes defs keyed by name, keeping slice order as the
// dictionary position.
func (r *PostgresSkillRepository) UpsertDefinitions(ctx context.Context, defs []skill.Definition) (int, error) {
	if len(defs) == 0 {
		return 0, nil
	}

	n := 0
	err := database.InTx(ctx, r.db, func(tx database.Querier) error {
		for i, d := range defs {
			name := skill.Normalize(d.Name)
			if name == "" {
				return fmt.Errorf("skill at position %d: %w", i, skill.ErrEmptyName)
			}
			aliases := make([]string, 0, len(d.Aliases))
			for _, a := range d.Aliases {
				if a = strings.TrimSpace(a); a != "" {
					aliases = append(aliases, skill.Normalize(a))
				}
			}
			affected, err := tx.Exec(ctx,
				`INSERT INTO skills (name, category, aliases, weight, position)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (name) DO UPDATE SET
					category = EXCLUDED.category,
					aliases = EXCLUDED.aliases,
					weight = EXCLUDED.weight,
					position = EXCLUDED.position`,
				name, string(d.Category), aliases, d.Weight, i,
			)
			if err != nil {
				return fmt.Errorf("upsert skill %q: %w", name, err)
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
