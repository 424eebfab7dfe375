package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SelfAndAliasMatch(t *testing.T) {
	ex := NewExtractor(DefaultDictionary())

	for _, def := range DefaultDefinitions() {
		t.Run(def.Name, func(t *testing.T) {
			assert.Equal(t, []string{def.Name}, ex.Extract(def.Name))
			for _, a := range def.Aliases {
				assert.Equal(t, []string{def.Name}, ex.Extract(a), "alias %q", a)
			}
		})
	}
}

func TestExtract_WordBoundaries(t *testing.T) {
	ex := NewExtractor(DefaultDictionary())

	got := ex.Extract("javascript")
	assert.Equal(t, []string{"javascript"}, got)
	assert.NotContains(t, got, "java")

	assert.Empty(t, ex.Extract("mysqlx postgresqlite gopher"))
	assert.Equal(t, []string{"node.js"}, ex.Extract("Built APIs in Node.js."))
	assert.Empty(t, ex.Extract("nodexjs"), "the dot in node.js must be literal")
}

func TestExtract_CaseInsensitiveAndDeduplicated(t *testing.T) {
	ex := NewExtractor(DefaultDictionary())

	got := ex.Extract("REACT developer. React, ReactJS and react.js; also MongoDB / mongo and K8S.")
	assert.Equal(t, []string{"react", "mongodb", "kubernetes"}, got)
}

func TestExtract_DictionaryOrder(t *testing.T) {
	ex := NewExtractor(DefaultDictionary())

	got := ex.Extract("docker, python, react, aws")
	assert.Equal(t, []string{"python", "react", "aws", "docker"}, got)
}

func TestExtract_Empty(t *testing.T) {
	ex := NewExtractor(DefaultDictionary())

	got := ex.Extract("")
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, ex.Extract("   \n\t"))
	assert.Empty(t, ex.Extract("nothing relevant here"))
}

func TestExtract_CustomDictionary(t *testing.T) {
	dict, err := NewDictionary([]Definition{
		{Name: "Rust", Category: CategoryCoreLanguages, Aliases: []string{"rustlang"}, Weight: 1},
		{Name: "c#", Category: CategoryCoreLanguages, Aliases: []string{"csharp"}, Weight: 1},
	})
	require.NoError(t, err)

	ex := NewExtractor(dict)
	assert.Equal(t, []string{"rust", "c#"}, ex.Extract("RustLang and C# (csharp)"))
}

func TestContains(t *testing.T) {
	ex := NewExtractor(DefaultDictionary())

	assert.True(t, ex.Contains("Five years of ReactJS", "react"))
	assert.False(t, ex.Contains("javascript only", "java"))
	assert.True(t, ex.Contains("we use elixir daily", "Elixir"))
	assert.False(t, ex.Contains("elixirs", "elixir"))
	assert.False(t, ex.Contains("anything", "  "))
}
