package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillDictionarySchema_ValidJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal(skillDictionarySchema, &v))
	assert.Contains(t, v, "$schema")
	assert.Contains(t, v, "properties")
}

func TestValidateSkillDictionary(t *testing.T) {
	ok := `{"skills":[{"name":"go","category":"core_languages","aliases":["golang"],"weight":1.1}]}`
	assert.NoError(t, ValidateSkillDictionary([]byte(ok)))

	bad := `{"skills":[{"name":"","category":"core_languages","weight":-1}]}`
	err := ValidateSkillDictionary([]byte(bad))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
	assert.Contains(t, ve.Error(), "validation failed")
}

func TestValidateSkillDictionary_MalformedDocument(t *testing.T) {
	assert.Error(t, ValidateSkillDictionary([]byte(`{"skills": [`)))
}
