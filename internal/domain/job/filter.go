package job

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const DefaultLimit = 10

var ErrInvalidLimit = errors.New("limit must not be negative")

// Filter fields are optional and AND-combined. Tags match when a listing
// carries any of them.
type Filter struct {
	Tags          []string `json:"tags,omitempty"`
	Location      string   `json:"location,omitempty"`
	JobType       string   `json:"job_type,omitempty"`
	MinSalary     int      `json:"min_salary,omitempty"`
	MinMatchScore int      `json:"min_match_score,omitempty"`
	Page          int      `json:"page,omitempty"`
	Limit         int      `json:"limit,omitempty"`
}

type Page struct {
	Results    []Listing `json:"results"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	HasMore    bool      `json:"has_more"`
}

// Validate rejects inputs Apply does not define. A zero limit selects
// DefaultLimit, a negative one is an error.
func (f Filter) Validate() error {
	if f.Limit < 0 {
		return ErrInvalidLimit
	}
	return nil
}

// Normalized returns f with page and limit defaults applied.
func (f Filter) Normalized() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	return f
}

func (f Filter) Matches(l Listing) bool {
	if len(f.Tags) > 0 && !anyTag(l.Tags, f.Tags) {
		return false
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		if !strings.Contains(strings.ToLower(l.Location), strings.ToLower(loc)) {
			return false
		}
	}
	if jt := strings.TrimSpace(f.JobType); jt != "" {
		if !strings.EqualFold(strings.TrimSpace(l.Type), jt) {
			return false
		}
	}
	if f.MinSalary > 0 {
		if min, ok := ParseMinSalary(l.Salary); ok && min < f.MinSalary {
			return false
		}
	}
	if f.MinMatchScore > 0 && l.MatchScore < f.MinMatchScore {
		return false
	}
	return true
}

// Apply filters listings, keeping their relative order, and returns the
// requested page. Pages past the end are empty.
func Apply(listings []Listing, f Filter) Page {
	f = f.Normalized()

	filtered := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if f.Matches(l) {
			filtered = append(filtered, l)
		}
	}

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/f.Limit + 1
	}

	results := make([]Listing, 0, min(f.Limit, total))
	// Compare pages before multiplying; a huge page or limit would overflow.
	if f.Page <= totalPages {
		start := (f.Page - 1) * f.Limit
		end := total
		if f.Limit < total-start {
			end = start + f.Limit
		}
		results = append(results, filtered[start:end]...)
	}

	return Page{
		Results:    results,
		Total:      total,
		Page:       f.Page,
		TotalPages: totalPages,
		HasMore:    f.Page < totalPages,
	}
}

// MatchJobsWithResume pages listings for a resume. Scores are precomputed per
// listing, so the resume does not affect the result.
func MatchJobsWithResume(resumeText string, listings []Listing, f Filter) Page {
	_ = resumeText
	return Apply(listings, f)
}

var salaryTokenRe = regexp.MustCompile(`(?i)\$(\d+)k`)

// ParseMinSalary reads the first "$Nk" token of a free-text salary as N*1000
// dollars. ok is false when no token is present or N*1000 overflows.
func ParseMinSalary(salary string) (int, bool) {
	m := salaryTokenRe.FindStringSubmatch(salary)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > math.MaxInt/1000 {
		return 0, false
	}
	return n * 1000, true
}

// anyTag is true when want holds no usable tag.
func anyTag(have, want []string) bool {
	wanted := 0
	for _, w := range want {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		wanted++
		for _, h := range have {
			if strings.EqualFold(strings.TrimSpace(h), w) {
				return true
			}
		}
	}
	return wanted == 0
}
