package catalog

import (
	"context"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
)

const SampleSourceName = "sample"

// SampleSource serves a fixed catalog. It backs local runs and seeding when
// no board is configured.
type SampleSource struct {
	now func() time.Time
}

func NewSampleSource() *SampleSource {
	return &SampleSource{now: time.Now}
}

func (s *SampleSource) Name() string { return SampleSourceName }

func (s *SampleSource) Fetch(ctx context.Context) ([]job.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := time.Now
	if s != nil && s.now != nil {
		now = s.now
	}
	return SampleListings(now()), nil
}

// SampleListings returns five listings posted relative to now.
func SampleListings(now time.Time) []job.Listing {
	daysAgo := func(d int) *time.Time {
		t := now.UTC().AddDate(0, 0, -d).Truncate(24 * time.Hour)
		return &t
	}

	return []job.Listing{
		{
			ID:               "sample-1",
			Source:           SampleSourceName,
			ExternalID:       "sample-1",
			Title:            "Senior React Developer",
			Company:          "TechCorp",
			Location:         "San Francisco, CA",
			Type:             "Full-time",
			Salary:           "$120k - $150k",
			Description:      "Build customer-facing dashboards with React and TypeScript. Work with Node.js services and GraphQL APIs.",
			Tags:             []string{"React", "TypeScript", "Node.js", "GraphQL"},
			MatchScore:       92,
			MatchExplanation: "Strong overlap on React and TypeScript; GraphQL experience is a plus.",
			PostedAt:         daysAgo(2),
		},
		{
			ID:               "sample-2",
			Source:           SampleSourceName,
			ExternalID:       "sample-2",
			Title:            "Full Stack Engineer",
			Company:          "StartupXYZ",
			Location:         "Remote",
			Type:             "Full-time",
			Salary:           "$100k - $130k",
			Description:      "Own features end to end on a Node.js, Express and MongoDB stack with a React frontend. Docker and AWS in production.",
			Tags:             []string{"Node.js", "React", "MongoDB", "AWS"},
			MatchScore:       85,
			MatchExplanation: "Matches the MERN stack; AWS exposure needed.",
			PostedAt:         daysAgo(5),
		},
		{
			ID:               "sample-3",
			Source:           SampleSourceName,
			ExternalID:       "sample-3",
			Title:            "Frontend Developer",
			Company:          "DesignHub",
			Location:         "New York, NY",
			Type:             "Contract",
			Salary:           "$80k - $100k",
			Description:      "Craft accessible interfaces with Vue.js, HTML and CSS. Collaborate with designers in Figma.",
			Tags:             []string{"Vue.js", "CSS", "HTML", "Figma"},
			MatchScore:       78,
			MatchExplanation: "Good frontend fundamentals; Vue.js is the main gap.",
			PostedAt:         daysAgo(7),
		},
		{
			ID:               "sample-4",
			Source:           SampleSourceName,
			ExternalID:       "sample-4",
			Title:            "Backend Engineer",
			Company:          "DataFlow Inc",
			Location:         "Austin, TX",
			Type:             "Full-time",
			Salary:           "$110k - $140k",
			Description:      "Design data services in Python and Django on PostgreSQL. Deploy with Docker and Kubernetes.",
			Tags:             []string{"Python", "Django", "PostgreSQL", "Docker"},
			MatchScore:       71,
			MatchExplanation: "Solid backend background; Python depth is limited.",
			PostedAt:         daysAgo(10),
		},
		{
			ID:               "sample-5",
			Source:           SampleSourceName,
			ExternalID:       "sample-5",
			Title:            "Mobile Developer",
			Company:          "AppWorks",
			Location:         "Remote",
			Type:             "Part-time",
			Salary:           "Competitive",
			Description:      "Ship cross-platform mobile apps in React Native and TypeScript backed by Firebase.",
			Tags:             []string{"React Native", "TypeScript", "Firebase"},
			MatchScore:       88,
			MatchExplanation: "React skills transfer directly to React Native.",
			PostedAt:         daysAgo(1),
		},
	}
}
