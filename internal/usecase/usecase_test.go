package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/catalog"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/analytics"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/user"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/repository"

	"github.com/google/uuid"
)

var testLogger = log.New(io.Discard, "", 0)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = []byte(value)
	return true, nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type mockJobRepo struct {
	items []job.Listing
	err   error
	calls int
	mu    sync.Mutex
}

func (m *mockJobRepo) ListListings(context.Context) ([]job.Listing, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.items, m.err
}

func (m *mockJobRepo) FindByID(_ context.Context, id string) (job.Listing, error) {
	for _, l := range m.items {
		if l.ID == id {
			return l, nil
		}
	}
	return job.Listing{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) UpsertListings(context.Context, []job.Listing) (int, error) { return 0, nil }
func (m *mockJobRepo) ListUntagged(context.Context, int, int) ([]job.Listing, error) {
	return nil, nil
}
func (m *mockJobRepo) UpdateTags(context.Context, string, []string) error { return nil }

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func (m mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m mockUserRepo) Upsert(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (m mockUserRepo) UpdateResume(context.Context, uuid.UUID, string) error    { return nil }

type mockAppRepo struct {
	mu      sync.Mutex
	created []application.Application
	list    []application.Application
	err     error
}

func (m *mockAppRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return application.Application{}, m.err
	}
	a.ID = uuid.NewString()
	m.created = append(m.created, a)
	return a, nil
}

func (m *mockAppRepo) ListByUser(context.Context, string) ([]application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockAppRepo) UpdateStatus(_ context.Context, _ string, id string, st application.Status) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	for _, a := range m.list {
		if a.ID == id {
			a.Status = st
			return a, nil
		}
	}
	return application.Application{}, repository.ErrApplicationNotFound
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) NotifyApplicationsUpdated(userID, action string) {
	n.events = append(n.events, userID+":"+action)
}

func TestSkillUsecase_Match(t *testing.T) {
	uc := NewSkillUsecase(skill.NewExtractor(skill.DefaultDictionary()))

	res, err := uc.Match(context.Background(), MatchInput{
		CandidateText:   "Built dashboards in ReactJS.",
		CandidateSkills: []string{"nodejs", "cobol"},
		RequiredSkills:  []string{"React", "Node.js", "mongo", "cobol"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Join(res.Matched, ",") != "react,node.js" {
		t.Fatalf("unexpected matched: %v", res.Matched)
	}
	if strings.Join(res.Missing, ",") != "mongodb" {
		t.Fatalf("unexpected missing: %v", res.Missing)
	}
	if res.Score != 68 {
		t.Fatalf("expected score 68, got %d", res.Score)
	}
}

func TestSkillUsecase_ExtractTooLarge(t *testing.T) {
	uc := NewSkillUsecase(skill.NewExtractor(skill.DefaultDictionary()))
	_, err := uc.Extract(context.Background(), strings.Repeat("a", MaxTextBytes+1))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobMatchUsecase_InvalidLimit(t *testing.T) {
	uc := NewJobMatchUsecase(&mockJobRepo{}, mockUserRepo{}, skill.NewExtractor(skill.DefaultDictionary()), nil, 0, testLogger)
	_, err := uc.MatchJobsWithResume(context.Background(), uuid.New(), job.Filter{Limit: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobMatchUsecase_PagesAndCaches(t *testing.T) {
	uid := uuid.New()
	jobs := &mockJobRepo{items: catalog.SampleListings(time.Now())}
	users := mockUserRepo{users: map[uuid.UUID]user.User{uid: {ID: uid, ResumeText: "React and TypeScript, some golang"}}}
	cache := newMemCache()
	uc := NewJobMatchUsecase(jobs, users, skill.NewExtractor(skill.DefaultDictionary()), cache, time.Minute, testLogger)

	f := job.Filter{MinMatchScore: 80}
	got, err := uc.MatchJobsWithResume(context.Background(), uid, f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Total != 3 || len(got.Results) != 3 {
		t.Fatalf("expected 3 results, got total=%d len=%d", got.Total, len(got.Results))
	}
	if strings.Join(got.ResumeSkills, ",") != "typescript,go,react" {
		t.Fatalf("unexpected resume skills: %v", got.ResumeSkills)
	}

	key := JobsMatchCacheKey(f)
	if !cache.has(key) {
		t.Fatalf("expected page to be cached under %s", key)
	}
	if cache.has(JobsMatchLockKey(key)) {
		t.Fatalf("expected lock to be released")
	}

	again, err := uc.MatchJobsWithResume(context.Background(), uid, f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if jobs.calls != 1 {
		t.Fatalf("expected catalog to be read once, got %d", jobs.calls)
	}
	if again.Total != got.Total || again.Results[0].ID != got.Results[0].ID {
		t.Fatalf("cached page differs")
	}
}

func TestJobMatchUsecase_UnknownUserHasNoResumeSkills(t *testing.T) {
	uc := NewJobMatchUsecase(&mockJobRepo{items: catalog.SampleListings(time.Now())}, mockUserRepo{}, skill.NewExtractor(skill.DefaultDictionary()), nil, 0, testLogger)
	got, err := uc.MatchJobsWithResume(context.Background(), uuid.New(), job.Filter{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.ResumeSkills) != 0 || got.Total != 5 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestJobMatchUsecase_RepoError(t *testing.T) {
	cache := newMemCache()
	uc := NewJobMatchUsecase(&mockJobRepo{err: errors.New("db down")}, mockUserRepo{}, skill.NewExtractor(skill.DefaultDictionary()), cache, 0, testLogger)
	_, err := uc.MatchJobsWithResume(context.Background(), uuid.New(), job.Filter{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if cache.has(JobsMatchLockKey(JobsMatchCacheKey(job.Filter{}))) {
		t.Fatalf("expected lock to be released on error")
	}
}

func TestJobsMatchCacheKey_Normalizes(t *testing.T) {
	a := JobsMatchCacheKey(job.Filter{Tags: []string{"React", "go"}, Location: " Remote "})
	b := JobsMatchCacheKey(job.Filter{Tags: []string{"GO", "react", "go"}, Location: "remote", Page: 1, Limit: 10})
	if a != b {
		t.Fatalf("expected equal keys")
	}
	if a == JobsMatchCacheKey(job.Filter{Tags: []string{"react"}}) {
		t.Fatalf("expected different keys")
	}
	if !strings.HasPrefix(JobsMatchLockKey(a), "jobs:lock:") {
		t.Fatalf("unexpected lock key %s", JobsMatchLockKey(a))
	}
}

func newApplicationsFixture(t *testing.T) (*Applications, *mockAppRepo, *memCache, *recordingNotifier, uuid.UUID, job.Listing) {
	t.Helper()
	uid := uuid.New()
	listing := job.Listing{
		ID:         uuid.NewString(),
		Title:      "Full Stack Engineer",
		Company:    "StartupXYZ",
		Tags:       []string{"Node.js", "MongoDB", "React"},
		MatchScore: 85,
	}
	apps := &mockAppRepo{}
	cache := newMemCache()
	n := &recordingNotifier{}
	uc := NewApplicationUsecase(
		apps,
		&mockJobRepo{items: []job.Listing{listing}},
		mockUserRepo{users: map[uuid.UUID]user.User{uid: {ID: uid, ResumeText: "I ship React apps on NodeJS."}}},
		skill.NewExtractor(skill.DefaultDictionary()),
		cache,
		n,
		testLogger,
	)
	uc.now = func() time.Time { return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC) }
	return uc, apps, cache, n, uid, listing
}

func TestApplicationUsecase_ApplySnapshotsJobAndResume(t *testing.T) {
	uc, apps, cache, n, uid, listing := newApplicationsFixture(t)
	_ = cache.SetJSON(context.Background(), AnalyticsCacheKey(uid.String()), analytics.Empty(), 0)

	got, err := uc.Apply(context.Background(), uid, ApplyInput{JobID: listing.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != application.StatusApplied {
		t.Fatalf("expected applied, got %s", got.Status)
	}
	if got.Job == nil || strings.Join(got.Job.MatchedSkills, ",") != "node.js,react" {
		t.Fatalf("unexpected snapshot: %+v", got.Job)
	}
	if strings.Join(got.Job.RequiredSkills, ",") != "node.js,mongodb,react" {
		t.Fatalf("unexpected required skills: %v", got.Job.RequiredSkills)
	}
	if got.EffectiveMatchScore() != 85 || got.Company != "StartupXYZ" {
		t.Fatalf("unexpected score/company: %d %s", got.EffectiveMatchScore(), got.Company)
	}
	if got.AppliedDate == nil || got.AppliedAt == nil || got.ResumeSnapshot == "" {
		t.Fatalf("expected dates and resume snapshot")
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected 1 created application")
	}
	if cache.has(AnalyticsCacheKey(uid.String())) {
		t.Fatalf("expected analytics cache to be invalidated")
	}
	if len(n.events) != 1 || n.events[0] != uid.String()+":created" {
		t.Fatalf("unexpected events: %v", n.events)
	}
}

func TestApplicationUsecase_ApplyErrors(t *testing.T) {
	uc, apps, _, n, uid, listing := newApplicationsFixture(t)

	cases := []struct {
		name string
		uid  uuid.UUID
		in   ApplyInput
		want error
	}{
		{name: "no user", uid: uuid.Nil, in: ApplyInput{JobID: listing.ID}, want: ErrUnauthorized},
		{name: "bad job id", uid: uid, in: ApplyInput{JobID: "sample-1"}, want: ErrInvalidInput},
		{name: "bad status", uid: uid, in: ApplyInput{JobID: listing.ID, Status: "ghosted"}, want: ErrInvalidInput},
		{name: "unknown job", uid: uid, in: ApplyInput{JobID: uuid.NewString()}, want: ErrJobNotFound},
		{name: "unknown user", uid: uuid.New(), in: ApplyInput{JobID: listing.ID}, want: ErrUserNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Apply(context.Background(), tc.uid, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	apps.err = repository.ErrAlreadyApplied
	if _, err := uc.Apply(context.Background(), uid, ApplyInput{JobID: listing.ID}); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if len(n.events) != 0 {
		t.Fatalf("expected no events on failure, got %v", n.events)
	}
}

func TestApplicationUsecase_SavedHasNoDates(t *testing.T) {
	uc, _, _, _, uid, listing := newApplicationsFixture(t)
	got, err := uc.Apply(context.Background(), uid, ApplyInput{JobID: listing.ID, Status: "Saved"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.AppliedDate != nil || got.AppliedAt != nil {
		t.Fatalf("expected no applied dates for a saved job")
	}
}

func TestApplicationUsecase_UpdateStatus(t *testing.T) {
	uc, apps, _, n, uid, _ := newApplicationsFixture(t)
	apps.list = []application.Application{{ID: "a1", Status: application.StatusApplied}}

	got, err := uc.UpdateStatus(context.Background(), uid, "a1", " Interview ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != application.StatusInterview {
		t.Fatalf("expected interview, got %s", got.Status)
	}
	if len(n.events) != 1 || !strings.HasSuffix(n.events[0], ":status_updated") {
		t.Fatalf("unexpected events: %v", n.events)
	}

	if _, err := uc.UpdateStatus(context.Background(), uid, "a1", "ghosted"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.UpdateStatus(context.Background(), uid, "missing", "offered"); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestAnalyticsUsecase_CachesPerUser(t *testing.T) {
	uid := uuid.New()
	score := 80
	day := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	apps := &mockAppRepo{list: []application.Application{
		{ID: "a1", Status: application.StatusApplied, MatchScore: &score, Company: "Acme", AppliedDate: &day},
		{ID: "a2", Status: application.StatusOffered, Company: "Acme", AppliedDate: &day},
	}}
	cache := newMemCache()
	uc := NewAnalyticsUsecase(apps, analytics.NewAggregator(skill.NewExtractor(skill.DefaultDictionary()), 10), cache, time.Minute, testLogger)

	got, err := uc.GetAnalytics(context.Background(), uid)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Total != 2 || got.PendingCount != 1 || got.SuccessRate != 50 || got.AvgMatchScore != 40 {
		t.Fatalf("unexpected analytics: %+v", got)
	}
	if !cache.has(AnalyticsCacheKey(uid.String())) {
		t.Fatalf("expected analytics to be cached")
	}

	apps.list = nil
	again, err := uc.GetAnalytics(context.Background(), uid)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if again.Total != 2 {
		t.Fatalf("expected cached analytics, got total=%d", again.Total)
	}
}

func TestAnalyticsUsecase_RepoError(t *testing.T) {
	uc := NewAnalyticsUsecase(&mockAppRepo{err: errors.New("db down")}, analytics.NewAggregator(skill.NewExtractor(skill.DefaultDictionary()), 10), nil, 0, testLogger)
	if _, err := uc.GetAnalytics(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
