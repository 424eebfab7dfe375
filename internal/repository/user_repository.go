package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, full_name, resume_text, created_at, updated_at`

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.ResumeText, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// Upsert is keyed by email. A zero ID gets a fresh one on insert; an existing
// row keeps its ID.
func (r *PostgresUserRepository) Upsert(ctx context.Context, u user.User) (user.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return scanUser(r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, full_name, resume_text)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			resume_text = EXCLUDED.resume_text,
			updated_at = now()
		 RETURNING `+userColumns,
		u.ID, strings.ToLower(strings.TrimSpace(u.Email)), strings.TrimSpace(u.FullName), u.ResumeText,
	))
}

func (r *PostgresUserRepository) UpdateResume(ctx context.Context, id uuid.UUID, resumeText string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET resume_text = $2, updated_at = now() WHERE id = $1`,
		id, resumeText,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}
