package seeder

import "github.com/Guruprasath-Annadurai/Nexture-sub001/internal/domain/skill"

// Defaults seeds the given dictionary, the sample catalog and the demo user.
// A nil dictionary falls back to the built-in one.
func Defaults(dict *skill.Dictionary) []Seeder {
	if dict == nil {
		dict = skill.DefaultDictionary()
	}
	return []Seeder{
		SkillsSeeder{Definitions: dict.Definitions()},
		SampleJobsSeeder{},
		DemoUserSeeder{},
	}
}
