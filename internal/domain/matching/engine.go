package matching

import (
	"math"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
)

type Result struct {
	Matched           []string                    `json:"matched"`
	Missing           []string                    `json:"missing"`
	Score             int                         `json:"score"`
	MatchedByCategory map[skill.Category][]string `json:"matched_by_category"`
}

// Calculate scores candidate skills against a required skill list using the
// dictionary weights. Required names unknown to the dictionary are ignored,
// and repeated names count once. Score is 0 when nothing required is known.
func Calculate(dict *skill.Dictionary, candidate skill.Set, required []string) Result {
	res := Result{
		Matched:           make([]string, 0, len(required)),
		Missing:           make([]string, 0),
		MatchedByCategory: make(map[skill.Category][]string, len(skill.Categories())),
	}
	for _, c := range skill.Categories() {
		res.MatchedByCategory[c] = []string{}
	}

	var totalWeight float64
	var matchedWeight float64

	seen := make(map[string]struct{}, len(required))
	for _, r := range required {
		def, ok := dict.Lookup(r)
		if !ok {
			continue
		}
		if _, dup := seen[def.Name]; dup {
			continue
		}
		seen[def.Name] = struct{}{}

		totalWeight += def.Weight
		if candidate.Has(def.Name) {
			matchedWeight += def.Weight
			res.Matched = append(res.Matched, def.Name)
			res.MatchedByCategory[def.Category] = append(res.MatchedByCategory[def.Category], def.Name)
			continue
		}
		res.Missing = append(res.Missing, def.Name)
	}

	if totalWeight > 0 {
		res.Score = clampInt(int(math.Round(matchedWeight/totalWeight*100)), 0, 100)
	}
	return res
}

// MatchText extracts the candidate's skills from text before scoring.
func MatchText(ex *skill.Extractor, text string, required []string) Result {
	return Calculate(ex.Dictionary(), ex.ExtractSet(text), required)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
