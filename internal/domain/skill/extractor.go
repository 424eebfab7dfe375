package skill

import (
	"regexp"
	"strings"
)

type surfacePatterns struct {
	name     string
	patterns []*regexp.Regexp
}

// Extractor recognizes dictionary skills in free text. Patterns are compiled
// once; Extract is safe for concurrent use.
type Extractor struct {
	dict    *Dictionary
	entries []surfacePatterns
}

func NewExtractor(dict *Dictionary) *Extractor {
	e := &Extractor{dict: dict}
	for _, def := range dict.Definitions() {
		sp := surfacePatterns{name: def.Name, patterns: make([]*regexp.Regexp, 0, 1+len(def.Aliases))}
		sp.patterns = append(sp.patterns, boundaryPattern(def.Name))
		for _, a := range def.Aliases {
			sp.patterns = append(sp.patterns, boundaryPattern(a))
		}
		e.entries = append(e.entries, sp)
	}
	return e
}

func (e *Extractor) Dictionary() *Dictionary {
	if e == nil {
		return nil
	}
	return e.dict
}

// Extract returns canonical skill names found in text, deduplicated and in
// dictionary order. The canonical name is tried first, then aliases in
// declaration order; the first hit records the canonical name.
func (e *Extractor) Extract(text string) []string {
	out := make([]string, 0)
	if e == nil {
		return out
	}
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return out
	}
	for _, ent := range e.entries {
		for _, re := range ent.patterns {
			if re.MatchString(lower) {
				out = append(out, ent.name)
				break
			}
		}
	}
	return out
}

func (e *Extractor) ExtractSet(text string) Set {
	return NewSet(e.Extract(text)...)
}

// Contains reports whether skill occurs in text as a whole word. Known skills
// also match through their aliases; unknown names are matched literally.
func (e *Extractor) Contains(text, skill string) bool {
	name := Normalize(skill)
	if name == "" {
		return false
	}
	lower := strings.ToLower(text)
	if e != nil && e.dict != nil {
		if idx, ok := e.dict.byName[name]; ok {
			for _, re := range e.entries[idx].patterns {
				if re.MatchString(lower) {
					return true
				}
			}
			return false
		}
	}
	return boundaryPattern(name).MatchString(lower)
}

// boundaryPattern matches s with a non-alphanumeric character or a text edge
// on both sides, so "java" never matches inside "javascript".
func boundaryPattern(s string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(Normalize(s)) + `([^a-z0-9]|$)`)
}
