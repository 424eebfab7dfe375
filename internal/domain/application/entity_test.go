package application

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(" " + string(s) + " ")
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStatus("INTERVIEW")
	require.NoError(t, err)
	assert.Equal(t, StatusInterview, got)

	for _, bad := range []string{"", "offer", "ghosted"} {
		_, err := ParseStatus(bad)
		assert.ErrorIs(t, err, ErrUnknownStatus, bad)
	}
}

func TestStatus_UnmarshalJSON(t *testing.T) {
	var apps []Application
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"a","status":"Offered"},
		{"id":"b","status":" APPLIED "},
		{"id":"c","status":"interview"}
	]`), &apps))
	require.Len(t, apps, 3)
	assert.Equal(t, StatusOffered, apps[0].Status)
	assert.Equal(t, StatusApplied, apps[1].Status)
	assert.Equal(t, StatusInterview, apps[2].Status)

	for _, raw := range []string{`{"status":"ofered"}`, `{"status":""}`} {
		var a Application
		assert.ErrorContains(t, json.Unmarshal([]byte(raw), &a), ErrUnknownStatus.Error(), raw)
	}
}

func TestStatusGroups(t *testing.T) {
	var inProgress, success []Status
	for _, s := range Statuses() {
		if s.InProgress() {
			inProgress = append(inProgress, s)
		}
		if s.Successful() {
			success = append(success, s)
		}
	}
	assert.Equal(t, []Status{StatusApplied, StatusSubmitted, StatusPending, StatusInterview}, inProgress)
	assert.Equal(t, []Status{StatusOffered, StatusAccepted}, success)
}

func TestActivityTime(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)

	got, ok := Application{AppliedDate: &d1, AppliedAt: &d2, UpdatedAt: &d3}.ActivityTime()
	assert.True(t, ok)
	assert.Equal(t, d1, got)

	got, ok = Application{AppliedAt: &d2, UpdatedAt: &d3}.ActivityTime()
	assert.True(t, ok)
	assert.Equal(t, d2, got)

	zero := time.Time{}
	got, ok = Application{AppliedDate: &zero, UpdatedAt: &d3}.ActivityTime()
	assert.True(t, ok)
	assert.Equal(t, d3, got)

	_, ok = Application{}.ActivityTime()
	assert.False(t, ok)
}

func TestEffectiveMatchScore(t *testing.T) {
	jobScore, appScore := 90, 70

	assert.Equal(t, 90, Application{MatchScore: &appScore, Job: &JobSnapshot{MatchScore: &jobScore}}.EffectiveMatchScore())
	assert.Equal(t, 70, Application{MatchScore: &appScore, Job: &JobSnapshot{}}.EffectiveMatchScore())
	assert.Equal(t, 0, Application{}.EffectiveMatchScore())
}

func TestCompanyLabel(t *testing.T) {
	assert.Equal(t, "Acme", Application{Company: " Acme ", Job: &JobSnapshot{Company: "Other"}}.CompanyLabel())
	assert.Equal(t, "Other", Application{Job: &JobSnapshot{Company: "Other"}}.CompanyLabel())
	assert.Equal(t, "Unknown (Backend Engineer)", Application{Job: &JobSnapshot{Title: "Backend Engineer"}}.CompanyLabel())
	assert.Equal(t, "Unknown Company", Application{}.CompanyLabel())
}
