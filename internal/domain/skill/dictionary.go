package skill

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName       = errors.New("skill name is empty")
	ErrDuplicateName   = errors.New("duplicate skill name")
	ErrAmbiguousAlias  = errors.New("alias resolves to more than one skill")
	ErrInvalidWeight   = errors.New("skill weight must be positive")
	ErrUnknownCategory = errors.New("unknown skill category")
)

// Dictionary is the immutable table of known skills. It is safe for
// concurrent use once built.
type Dictionary struct {
	defs    []Definition
	byName  map[string]int
	byAlias map[string]int
}

func NewDictionary(defs []Definition) (*Dictionary, error) {
	d := &Dictionary{
		defs:    make([]Definition, 0, len(defs)),
		byName:  make(map[string]int, len(defs)),
		byAlias: make(map[string]int),
	}

	for _, in := range defs {
		def := Definition{
			Name:     Normalize(in.Name),
			Category: Category(Normalize(string(in.Category))),
			Weight:   in.Weight,
		}
		if def.Name == "" {
			return nil, ErrEmptyName
		}
		if !def.Category.Valid() {
			return nil, fmt.Errorf("%w: skill=%s category=%q", ErrUnknownCategory, def.Name, in.Category)
		}
		if def.Weight <= 0 {
			return nil, fmt.Errorf("%w: skill=%s weight=%v", ErrInvalidWeight, def.Name, def.Weight)
		}
		if _, ok := d.byName[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
		}
		if owner, ok := d.byAlias[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s (alias of %s)", ErrAmbiguousAlias, def.Name, d.defs[owner].Name)
		}

		idx := len(d.defs)
		seen := map[string]struct{}{def.Name: {}}
		for _, a := range in.Aliases {
			a = Normalize(a)
			if a == "" {
				continue
			}
			if _, dup := seen[a]; dup {
				continue
			}
			if other, ok := d.byName[a]; ok {
				return nil, fmt.Errorf("%w: %s (skill %s and %s)", ErrAmbiguousAlias, a, d.defs[other].Name, def.Name)
			}
			if other, ok := d.byAlias[a]; ok {
				return nil, fmt.Errorf("%w: %s (skill %s and %s)", ErrAmbiguousAlias, a, d.defs[other].Name, def.Name)
			}
			seen[a] = struct{}{}
			def.Aliases = append(def.Aliases, a)
			d.byAlias[a] = idx
		}

		d.byName[def.Name] = idx
		d.defs = append(d.defs, def)
	}

	return d, nil
}

// MustNewDictionary panics on invalid input. Intended for static tables.
func MustNewDictionary(defs []Definition) *Dictionary {
	d, err := NewDictionary(defs)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.defs)
}

// Lookup finds a definition by canonical name, case-insensitively.
func (d *Dictionary) Lookup(name string) (Definition, bool) {
	if d == nil {
		return Definition{}, false
	}
	idx, ok := d.byName[Normalize(name)]
	if !ok {
		return Definition{}, false
	}
	return d.defs[idx], true
}

// Resolve maps a canonical name or an alias to its canonical definition.
func (d *Dictionary) Resolve(surface string) (Definition, bool) {
	if def, ok := d.Lookup(surface); ok {
		return def, true
	}
	if d == nil {
		return Definition{}, false
	}
	idx, ok := d.byAlias[Normalize(surface)]
	if !ok {
		return Definition{}, false
	}
	return d.defs[idx], true
}

// Definitions returns a copy of the table in declaration order.
func (d *Dictionary) Definitions() []Definition {
	if d == nil {
		return []Definition{}
	}
	out := make([]Definition, len(d.defs))
	for i, def := range d.defs {
		def.Aliases = append([]string(nil), def.Aliases...)
		out[i] = def
	}
	return out
}

// ByCategory groups canonical names per category. Every category is present.
func (d *Dictionary) ByCategory() map[Category][]string {
	out := make(map[Category][]string, len(Categories()))
	for _, c := range Categories() {
		out[c] = []string{}
	}
	if d == nil {
		return out
	}
	for _, def := range d.defs {
		out[def.Category] = append(out[def.Category], def.Name)
	}
	return out
}
