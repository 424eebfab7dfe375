package integration

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/app"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/database/seeder"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pipeline"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestIntegration_SeedTagMatchApply runs against a real Postgres: migrate,
// seed, tag, match jobs for the demo user, apply and read analytics.
func TestIntegration_SeedTagMatchApply(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	cfg := testConfig(t)
	logger := log.New(io.Discard, "", 0)
	if testing.Verbose() {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	defer func() { _ = c.Close() }()
	cleanupApplications(t, c)
	defer cleanupApplications(t, c)

	if n := c.Extractor.Dictionary().Len(); n != skill.DefaultDictionary().Len() {
		t.Fatalf("dictionary from db: expected %d skills, got %d", skill.DefaultDictionary().Len(), n)
	}

	if _, err := c.Refresh.Run(ctx, pipeline.TagParams{Workers: 2}); err != nil {
		t.Fatalf("catalog refresh: %v", err)
	}

	listings, err := c.Jobs.ListListings(ctx)
	if err != nil {
		t.Fatalf("list listings: %v", err)
	}
	if len(listings) < 5 {
		t.Fatalf("expected at least the 5 sample listings, got %d", len(listings))
	}
	for _, l := range listings {
		if l.Source == "sample" && !l.HasTags() {
			t.Fatalf("sample listing %q has no tags", l.Title)
		}
	}

	f := app.New(cfg, app.NewRegistry(c), logger)
	tok, err := c.JWT.GenerateAccessToken(seeder.DemoUserID, seeder.DemoUserEmail)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	var page struct {
		Results []struct {
			ID         string `json:"id"`
			Title      string `json:"title"`
			MatchScore int    `json:"match_score"`
		} `json:"results"`
		Total        int      `json:"total"`
		ResumeSkills []string `json:"resume_skills"`
	}
	call(t, f, tok, http.MethodGet, "/api/v1/jobs/match?min_match_score=80&limit=50", "", http.StatusOK, &page)
	if page.Total == 0 {
		t.Fatalf("jobs match: expected results")
	}
	for _, r := range page.Results {
		if r.MatchScore < 80 {
			t.Fatalf("jobs match: %q has score %d below the filter", r.Title, r.MatchScore)
		}
	}
	if !contains(page.ResumeSkills, "react") {
		t.Fatalf("jobs match: expected resume skills to include react, got %v", page.ResumeSkills)
	}

	jobID := page.Results[0].ID
	call(t, f, tok, http.MethodPost, "/api/v1/applications", `{"job_id":"`+jobID+`"}`, http.StatusCreated, nil)
	call(t, f, tok, http.MethodPost, "/api/v1/applications", `{"job_id":"`+jobID+`"}`, http.StatusConflict, nil)

	var data struct {
		Total     int `json:"total_applications"`
		TopSkills []struct {
			Skill string `json:"skill"`
		} `json:"top_skills"`
	}
	call(t, f, tok, http.MethodGet, "/api/v1/applications/analytics", "", http.StatusOK, &data)
	if data.Total != 1 {
		t.Fatalf("analytics: expected 1 application, got %d", data.Total)
	}
	if len(data.TopSkills) == 0 {
		t.Fatalf("analytics: expected top skills from the job snapshot")
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	host := stringsOrDefault(os.Getenv("NEXTURE_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("NEXTURE_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("NEXTURE_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("NEXTURE_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("NEXTURE_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("NEXTURE_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set NEXTURE_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	return config.Config{
		App: config.AppConfig{AppName: "Nexture", Environment: "test", HTTPPort: "0", AutoMigrate: true, AutoSeed: true},
		Database: config.DatabaseConfig{
			DBHost: host, DBPort: port, DBName: name, DBUser: user, DBPassword: pass, DBSSLMode: ssl,
			ConnectTimeout: 5 * time.Second,
		},
		Redis: config.RedisConfig{
			Host: stringsOrDefault(os.Getenv("NEXTURE_TEST_REDIS_HOST"), "127.0.0.1"),
			Port: stringsOrDefault(os.Getenv("NEXTURE_TEST_REDIS_PORT"), "6379"),
			TTL:  time.Minute,
		},
		JWT:      config.JWTConfig{AccessSecret: "test-access-secret", AccessExpiresIn: 15 * time.Minute, Issuer: "nexture"},
		Matching: config.MatchingConfig{TopSkills: 10},
	}
}

func call(t *testing.T, app *fiber.App, token, method, path, body string, wantStatus int, out any) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d (%s)", method, path, wantStatus, resp.StatusCode, env.Message)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("%s %s: decode data: %v", method, path, err)
		}
	}
}

func cleanupApplications(t *testing.T, c *app.Container) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := c.DB.Exec(ctx, `DELETE FROM job_applications WHERE user_id = $1`, seeder.DemoUserID); err != nil {
		t.Logf("cleanup applications: %v", err)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
