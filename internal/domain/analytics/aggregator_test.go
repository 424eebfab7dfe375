package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator() *Aggregator {
	return NewAggregator(skill.NewExtractor(skill.DefaultDictionary()), 0)
}

func at(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func intp(v int) *int { return &v }

func TestAggregate_Empty(t *testing.T) {
	for _, in := range [][]application.Application{nil, {}} {
		got := newAggregator().Aggregate(in)

		assert.Equal(t, 0, got.Total)
		assert.Equal(t, 0, got.PendingCount)
		assert.Equal(t, 0, got.SuccessRate)
		assert.Equal(t, 0, got.AvgMatchScore)
		assert.NotNil(t, got.StatusCounts)
		assert.NotNil(t, got.TopSkills)
		assert.NotNil(t, got.Companies)
		assert.NotNil(t, got.Timeline)
		assert.Empty(t, got.StatusCounts)
		assert.Empty(t, got.Timeline)
	}

	b, err := json.Marshal(newAggregator().Aggregate(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_applications":0,"status_counts":[],"pending_count":0,"success_rate":0,"avg_match_score":0,"top_skills":[],"companies":[],"timeline":[]}`, string(b))
}

func TestAggregate_StatusCountsSparseInEnumerationOrder(t *testing.T) {
	apps := []application.Application{
		{Status: application.StatusRejected},
		{Status: application.StatusApplied},
		{Status: application.StatusInterview},
		{Status: application.StatusApplied},
		{Status: application.StatusOffered},
		{Status: application.StatusAccepted},
		{Status: application.StatusSaved},
		{Status: application.StatusPending},
	}
	got := newAggregator().Aggregate(apps)

	assert.Equal(t, []StatusCount{
		{Status: application.StatusSaved, Count: 1},
		{Status: application.StatusApplied, Count: 2},
		{Status: application.StatusPending, Count: 1},
		{Status: application.StatusInterview, Count: 1},
		{Status: application.StatusOffered, Count: 1},
		{Status: application.StatusAccepted, Count: 1},
		{Status: application.StatusRejected, Count: 1},
	}, got.StatusCounts)
	assert.Equal(t, 8, got.Total)
	assert.Equal(t, 4, got.PendingCount)
	assert.Equal(t, 25, got.SuccessRate)
}

func TestAggregate_AverageMatchScoreFallbacks(t *testing.T) {
	apps := []application.Application{
		{Status: application.StatusApplied, MatchScore: intp(10), Job: &application.JobSnapshot{MatchScore: intp(90)}},
		{Status: application.StatusApplied, MatchScore: intp(75)},
		{Status: application.StatusApplied},
	}
	got := newAggregator().Aggregate(apps)

	assert.Equal(t, 55, got.AvgMatchScore)
}

func TestAggregate_TopSkillsFallbackChain(t *testing.T) {
	apps := []application.Application{
		{
			Status:         application.StatusApplied,
			ResumeSnapshot: "Python and Django",
			Job:            &application.JobSnapshot{MatchedSkills: []string{"React", "node.js", "react"}, RequiredSkills: []string{"python"}},
		},
		{
			Status:         application.StatusApplied,
			ResumeSnapshot: "Worked with ReactJS, Docker and Elixir",
			Job:            &application.JobSnapshot{RequiredSkills: []string{"react", "kubernetes", "elixir"}},
		},
		{
			Status:         application.StatusApplied,
			ResumeSnapshot: "AWS certified, React and Docker daily",
			Job:            &application.JobSnapshot{RequiredSkills: []string{"rust"}},
		},
		{Status: application.StatusApplied},
	}
	got := newAggregator().Aggregate(apps)

	assert.Equal(t, []SkillCount{
		{Skill: "react", Count: 3},
		{Skill: "aws", Count: 1},
		{Skill: "docker", Count: 1},
		{Skill: "elixir", Count: 1},
		{Skill: "node.js", Count: 1},
	}, got.TopSkills)
}

func TestAggregate_TopSkillsResolveAliases(t *testing.T) {
	got := newAggregator().Aggregate([]application.Application{
		{Job: &application.JobSnapshot{MatchedSkills: []string{"ReactJS", "Golang"}}},
		{Job: &application.JobSnapshot{MatchedSkills: []string{"react", "reactjs", "Elixir"}}},
	})

	assert.Equal(t, []SkillCount{
		{Skill: "react", Count: 2},
		{Skill: "elixir", Count: 1},
		{Skill: "go", Count: 1},
	}, got.TopSkills)
}

func TestAggregate_TopSkillsLimit(t *testing.T) {
	agg := NewAggregator(skill.NewExtractor(skill.DefaultDictionary()), 2)
	got := agg.Aggregate([]application.Application{
		{ResumeSnapshot: "go redis docker"},
		{ResumeSnapshot: "go redis"},
		{ResumeSnapshot: "go"},
	})

	assert.Equal(t, []SkillCount{{Skill: "go", Count: 3}, {Skill: "redis", Count: 2}}, got.TopSkills)
}

func TestAggregate_Companies(t *testing.T) {
	apps := []application.Application{
		{Company: "Acme"},
		{Job: &application.JobSnapshot{Company: "Globex"}},
		{Company: "Acme"},
		{Job: &application.JobSnapshot{Title: "Data Engineer"}},
		{},
		{},
	}
	got := newAggregator().Aggregate(apps)

	assert.Equal(t, []string{"Acme", "Globex", "Unknown (Data Engineer)", "Unknown Company"}, got.Companies)
}

func TestAggregate_TimelineBucketsByDay(t *testing.T) {
	apps := []application.Application{
		{AppliedDate: at("2024-05-02T18:00:00Z")},
		{AppliedAt: at("2024-05-01T08:00:00Z")},
		{AppliedDate: at("2024-05-01T23:30:00Z")},
		{UpdatedAt: at("2024-04-30T12:00:00Z")},
		{},
	}
	got := newAggregator().Aggregate(apps)

	assert.Equal(t, []TimelinePoint{
		{Date: "2024-04-30", Count: 1},
		{Date: "2024-05-01", Count: 2},
		{Date: "2024-05-02", Count: 1},
	}, got.Timeline)
	assert.Equal(t, 5, got.Total)
}

func TestAggregate_SameDayProducesSinglePoint(t *testing.T) {
	apps := []application.Application{
		{Status: application.StatusApplied, AppliedDate: at("2024-06-10T09:00:00Z")},
		{Status: application.StatusApplied, AppliedDate: at("2024-06-10T17:45:00Z")},
	}
	got := newAggregator().Aggregate(apps)

	require.Len(t, got.Timeline, 1)
	assert.Equal(t, TimelinePoint{Date: "2024-06-10", Count: 2}, got.Timeline[0])
}

func TestAggregate_UnknownStatusStillCounted(t *testing.T) {
	got := newAggregator().Aggregate([]application.Application{{Status: "ghosted"}, {Status: application.StatusOffered}})

	assert.Equal(t, 2, got.Total)
	assert.Equal(t, []StatusCount{{Status: application.StatusOffered, Count: 1}}, got.StatusCounts)
	assert.Equal(t, 50, got.SuccessRate)
}
