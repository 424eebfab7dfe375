// Package schemas validates JSON documents against the JSON Schemas bundled
// with the service.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed skill_dictionary.schema.json
var skillDictionarySchema []byte

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateSkillDictionary validates a raw skill dictionary document.
func ValidateSkillDictionary(doc []byte) error {
	return validate(skillDictionarySchema, doc)
}

func validate(schema, doc []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, re := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: re.Field(), Message: re.Description()})
	}
	return ve
}
