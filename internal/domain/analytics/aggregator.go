package analytics

import (
	"math"
	"sort"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/application"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
)

const dayLayout = "2006-01-02"

type StatusCount struct {
	Status application.Status `json:"status"`
	Count  int                `json:"count"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type TimelinePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Data is derived on every request and has no identity of its own.
type Data struct {
	Total         int             `json:"total_applications"`
	StatusCounts  []StatusCount   `json:"status_counts"`
	PendingCount  int             `json:"pending_count"`
	SuccessRate   int             `json:"success_rate"`
	AvgMatchScore int             `json:"avg_match_score"`
	TopSkills     []SkillCount    `json:"top_skills"`
	Companies     []string        `json:"companies"`
	Timeline      []TimelinePoint `json:"timeline"`
}

func Empty() Data {
	return Data{
		StatusCounts: []StatusCount{},
		TopSkills:    []SkillCount{},
		Companies:    []string{},
		Timeline:     []TimelinePoint{},
	}
}

// Aggregator rolls an application history up into dashboard figures. Missing
// data degrades to zero or "unknown" values; it never fails.
type Aggregator struct {
	extractor *skill.Extractor
	topSkills int
}

// NewAggregator limits TopSkills to topSkills entries; zero or less keeps all.
func NewAggregator(ex *skill.Extractor, topSkills int) *Aggregator {
	return &Aggregator{extractor: ex, topSkills: topSkills}
}

func (a *Aggregator) Aggregate(apps []application.Application) Data {
	out := Empty()
	out.Total = len(apps)
	if out.Total == 0 {
		return out
	}

	counts := make(map[application.Status]int, len(application.Statuses()))
	for _, s := range application.Statuses() {
		counts[s] = 0
	}

	success := 0
	scoreSum := 0
	skillCounts := map[string]int{}
	seenCompany := map[string]struct{}{}
	byDay := map[string]int{}

	for _, app := range apps {
		if _, known := counts[app.Status]; known {
			counts[app.Status]++
		}
		if app.Status.InProgress() {
			out.PendingCount++
		}
		if app.Status.Successful() {
			success++
		}

		scoreSum += app.EffectiveMatchScore()

		for _, s := range a.skillsFor(app) {
			skillCounts[s]++
		}

		company := app.CompanyLabel()
		if _, dup := seenCompany[company]; !dup {
			seenCompany[company] = struct{}{}
			out.Companies = append(out.Companies, company)
		}

		if t, ok := app.ActivityTime(); ok {
			byDay[t.UTC().Format(dayLayout)]++
		}
	}

	for _, s := range application.Statuses() {
		if counts[s] > 0 {
			out.StatusCounts = append(out.StatusCounts, StatusCount{Status: s, Count: counts[s]})
		}
	}

	out.SuccessRate = roundRatio(success, out.Total, 100)
	out.AvgMatchScore = roundRatio(scoreSum, out.Total, 1)
	out.TopSkills = rankSkills(skillCounts, a.topSkills)
	out.Timeline = timeline(byDay)

	return out
}

// skillsFor picks one signal per application: the job's matched skills, else
// required skills confirmed in the resume snapshot, else a full extraction of
// the snapshot.
func (a *Aggregator) skillsFor(app application.Application) []string {
	if app.Job != nil {
		if matched := a.canonical(app.Job.MatchedSkills); len(matched) > 0 {
			return matched
		}
	}

	if app.ResumeSnapshot == "" || a == nil || a.extractor == nil {
		return nil
	}

	if app.Job != nil {
		confirmed := make([]string, 0, len(app.Job.RequiredSkills))
		for _, r := range a.canonical(app.Job.RequiredSkills) {
			if a.extractor.Contains(app.ResumeSnapshot, r) {
				confirmed = append(confirmed, r)
			}
		}
		if len(confirmed) > 0 {
			return confirmed
		}
	}

	return a.extractor.Extract(app.ResumeSnapshot)
}

// canonical maps known names and aliases to dictionary names, so "ReactJS"
// and "react" count as one skill. Unknown names are kept as written.
func (a *Aggregator) canonical(names []string) []string {
	if a == nil || a.extractor == nil {
		return dedupe(names)
	}
	dict := a.extractor.Dictionary()
	resolved := make([]string, 0, len(names))
	for _, n := range names {
		if def, ok := dict.Resolve(n); ok {
			n = def.Name
		}
		resolved = append(resolved, n)
	}
	return dedupe(resolved)
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = skill.Normalize(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func rankSkills(counts map[string]int, limit int) []SkillCount {
	out := make([]SkillCount, 0, len(counts))
	for s, c := range counts {
		out = append(out, SkillCount{Skill: s, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Skill < out[j].Skill
		}
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func timeline(byDay map[string]int) []TimelinePoint {
	out := make([]TimelinePoint, 0, len(byDay))
	for d, c := range byDay {
		out = append(out, TimelinePoint{Date: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func roundRatio(num, denom int, scale float64) int {
	if denom == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(denom) * scale))
}
