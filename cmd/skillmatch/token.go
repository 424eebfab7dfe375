package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database/seeder"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		secret string
		issuer string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token",
		Long:  "Signs an access token the API accepts, for local testing against a seeded database. Defaults to the demo user.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return fmt.Errorf("a signing secret is required (set JWT_ACCESS_SECRET or use --secret)")
			}
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user-id: %w", err)
			}
			tok, err := jwt.NewHMACService(secret, ttl, issuer).GenerateAccessToken(id, email)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"access_token": tok,
				"user_id":      id.String(),
				"expires_in":   ttl.String(),
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&userID, "user-id", seeder.DemoUserID.String(), "User id to put in the token")
	f.StringVar(&email, "email", seeder.DemoUserEmail, "Email claim")
	f.StringVar(&secret, "secret", os.Getenv("JWT_ACCESS_SECRET"), "HMAC signing secret")
	f.StringVar(&issuer, "issuer", envOr("JWT_ISSUER", "nexture"), "Issuer claim")
	f.DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
