package skill

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryCoreLanguages Category = "core_languages"
	CategoryFrameworks    Category = "frameworks"
	CategoryDatabases     Category = "databases"
	CategoryCloud         Category = "cloud"
	CategoryTools         Category = "tools"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryCoreLanguages,
		CategoryFrameworks,
		CategoryDatabases,
		CategoryCloud,
		CategoryTools,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCoreLanguages, CategoryFrameworks, CategoryDatabases, CategoryCloud, CategoryTools:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Definition describes one known skill. Name is the canonical id used for
// every match and aggregation; aliases only ever resolve to it.
type Definition struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Aliases  []string `json:"aliases,omitempty"`
	Weight   float64  `json:"weight"`
}

// Normalize trims and lowercases a skill or alias surface form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
