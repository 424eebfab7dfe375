package seeder

import (
	"context"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"

	"github.com/google/uuid"
)

var DemoUserID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

const (
	DemoUserEmail = "demo@nexture.dev"
	demoResume    = `Frontend developer with five years of React and TypeScript.
Built REST APIs in Node.js with Express and MongoDB, deployed with Docker on AWS.
Comfortable with Git, Jest and agile teams.`
)

type DemoUserSeeder struct{}

func (DemoUserSeeder) Name() string { return "demo_user" }

func (DemoUserSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "full_name", "resume_text"); err != nil {
		return err
	}
	_, err := repository.NewPostgresUserRepository(db).Upsert(ctx, user.User{
		ID:         DemoUserID,
		Email:      DemoUserEmail,
		FullName:   "Demo User",
		ResumeText: demoResume,
	})
	return err
}
