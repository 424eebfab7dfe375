package job

import (
	"time"
)

// Listing is catalog data. The core filters listings but never mutates them;
// MatchScore and MatchExplanation are precomputed upstream.
type Listing struct {
	ID               string     `json:"id"`
	Source           string     `json:"source,omitempty"`
	ExternalID       string     `json:"external_id,omitempty"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Salary           string     `json:"salary"`
	Description      string     `json:"description"`
	Tags             []string   `json:"tags"`
	MatchScore       int        `json:"match_score"`
	MatchExplanation string     `json:"match_explanation,omitempty"`
	URL              string     `json:"url,omitempty"`
	PostedAt         *time.Time `json:"posted_date,omitempty"`
}

func (l Listing) HasTags() bool {
	for _, t := range l.Tags {
		if t != "" {
			return true
		}
	}
	return false
}
