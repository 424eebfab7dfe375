package dto

import "github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"

type SkillResponse struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases"`
	Weight   float64  `json:"weight"`
}

type DictionaryResponse struct {
	Skills     []SkillResponse     `json:"skills"`
	Categories map[string][]string `json:"categories"`
}

func NewDictionaryResponse(defs []skill.Definition) DictionaryResponse {
	out := DictionaryResponse{
		Skills:     make([]SkillResponse, 0, len(defs)),
		Categories: make(map[string][]string, len(skill.Categories())),
	}
	for _, c := range skill.Categories() {
		out.Categories[string(c)] = []string{}
	}
	for _, d := range defs {
		aliases := d.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		out.Skills = append(out.Skills, SkillResponse{
			Name:     d.Name,
			Category: string(d.Category),
			Aliases:  aliases,
			Weight:   d.Weight,
		})
		out.Categories[string(d.Category)] = append(out.Categories[string(d.Category)], d.Name)
	}
	return out
}

type ExtractRequest struct {
	Text string `json:"text" validate:"required,max=200000"`
}

type ExtractResponse struct {
	Skills []string `json:"skills"`
}

type MatchRequest struct {
	CandidateText   string   `json:"candidate_text" validate:"max=200000,required_without=CandidateSkills"`
	CandidateSkills []string `json:"candidate_skills" validate:"max=200,dive,required,max=100"`
	RequiredSkills  []string `json:"required_skills" validate:"max=200,dive,required,max=100"`
}
