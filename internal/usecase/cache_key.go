package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/job"
)

const (
	jobsMatchKeyPrefix = "jobs:match:"
	jobsLockKeyPrefix  = "jobs:lock:"
	analyticsKeyPrefix = "analytics:user:"
)

type jobMatchCacheKeyInput struct {
	Tags          []string `json:"tags"`
	Location      string   `json:"location"`
	JobType       string   `json:"job_type"`
	MinSalary     int      `json:"min_salary"`
	MinMatchScore int      `json:"min_match_score"`
	Page          int      `json:"page"`
	Limit         int      `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsMatchCacheKey keys a catalog page by its normalized filter. Tag order
// and case do not change the key since tag matching ignores both.
func JobsMatchCacheKey(f job.Filter) string {
	f = f.Normalized()

	tags := make([]string, 0, len(f.Tags))
	seen := make(map[string]struct{}, len(f.Tags))
	for _, t := range f.Tags {
		t = normalizeSearchValue(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	sort.Strings(tags)

	in := jobMatchCacheKeyInput{
		Tags:          tags,
		Location:      normalizeSearchValue(f.Location),
		JobType:       normalizeSearchValue(f.JobType),
		MinSalary:     f.MinSalary,
		MinMatchScore: f.MinMatchScore,
		Page:          f.Page,
		Limit:         f.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return jobsMatchKeyPrefix + h
}

func JobsMatchLockKey(matchKey string) string {
	matchKey = strings.TrimSpace(matchKey)
	if strings.HasPrefix(matchKey, jobsMatchKeyPrefix) {
		return jobsLockKeyPrefix + strings.TrimPrefix(matchKey, jobsMatchKeyPrefix)
	}
	return jobsLockKeyPrefix + matchKey
}

func AnalyticsCacheKey(userID string) string {
	return analyticsKeyPrefix + strings.TrimSpace(userID)
}
