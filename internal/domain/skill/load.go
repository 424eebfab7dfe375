package skill

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/schemas"
)

type dictionaryFile struct {
	Version string       `json:"version,omitempty"`
	Skills  []Definition `json:"skills"`
}

// ParseDictionaryJSON validates doc against the skill dictionary schema and
// builds a Dictionary from it.
func ParseDictionaryJSON(doc []byte) (*Dictionary, error) {
	if err := schemas.ValidateSkillDictionary(doc); err != nil {
		return nil, err
	}
	var f dictionaryFile
	if err := json.Unmarshal(doc, &f); err != nil {
		return nil, fmt.Errorf("decode skill dictionary: %w", err)
	}
	return NewDictionary(f.Skills)
}

func LoadDictionaryFile(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill dictionary %s: %w", path, err)
	}
	d, err := ParseDictionaryJSON(b)
	if err != nil {
		return nil, fmt.Errorf("load skill dictionary %s: %w", path, err)
	}
	return d, nil
}

// MarshalDictionaryJSON renders d in the file format accepted by
// ParseDictionaryJSON.
func MarshalDictionaryJSON(d *Dictionary) ([]byte, error) {
	return json.MarshalIndent(dictionaryFile{Version: "1", Skills: d.Definitions()}, "", "  ")
}
