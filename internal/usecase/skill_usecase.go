package usecase

import (
	"context"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/matching"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"
)

// MaxTextBytes bounds resume and description input accepted for extraction.
const MaxTextBytes = 200_000

type MatchInput struct {
	CandidateText   string
	CandidateSkills []string
	RequiredSkills  []string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Definition, error)
	Extract(ctx context.Context, text string) ([]string, error)
	Match(ctx context.Context, in MatchInput) (matching.Result, error)
}

type Skill struct {
	extractor *skill.Extractor
}

func NewSkillUsecase(ex *skill.Extractor) *Skill {
	return &Skill{extractor: ex}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Definition, error) {
	if u == nil || u.extractor == nil {
		return nil, ErrInternal
	}
	return u.extractor.Dictionary().Definitions(), nil
}

func (u *Skill) Extract(ctx context.Context, text string) ([]string, error) {
	if u == nil || u.extractor == nil {
		return nil, ErrInternal
	}
	if len(text) > MaxTextBytes {
		return nil, ErrInvalidInput
	}
	return u.extractor.Extract(text), nil
}

// Match scores the union of skills extracted from CandidateText and the
// explicitly listed CandidateSkills. Aliases resolve to canonical names on
// both sides; unknown names are ignored.
func (u *Skill) Match(ctx context.Context, in MatchInput) (matching.Result, error) {
	if u == nil || u.extractor == nil {
		return matching.Result{}, ErrInternal
	}
	if len(in.CandidateText) > MaxTextBytes {
		return matching.Result{}, ErrInvalidInput
	}

	dict := u.extractor.Dictionary()
	candidate := u.extractor.ExtractSet(in.CandidateText)
	for _, s := range in.CandidateSkills {
		if def, ok := dict.Resolve(s); ok {
			candidate[def.Name] = struct{}{}
		}
	}

	return matching.Calculate(dict, candidate, canonicalSkills(dict, in.RequiredSkills)), nil
}

// canonicalSkills maps names and aliases to canonical names. Unknown entries
// are kept as typed so the matcher can skip them.
func canonicalSkills(dict *skill.Dictionary, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if def, ok := dict.Resolve(n); ok {
			out = append(out, def.Name)
			continue
		}
		out = append(out, skill.Normalize(n))
	}
	return out
}
