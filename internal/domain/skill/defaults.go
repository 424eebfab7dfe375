package skill

// No alias may be a whole-word occurrence of another entry's name or alias,
// otherwise extracting that alias would report two skills.
var defaultDefinitions = []Definition{
	{Name: "javascript", Category: CategoryCoreLanguages, Aliases: []string{"ecmascript", "es6"}, Weight: 1.2},
	{Name: "typescript", Category: CategoryCoreLanguages, Aliases: []string{"ts"}, Weight: 1.2},
	{Name: "python", Category: CategoryCoreLanguages, Weight: 1.2},
	{Name: "java", Category: CategoryCoreLanguages, Weight: 1.1},
	{Name: "go", Category: CategoryCoreLanguages, Aliases: []string{"golang"}, Weight: 1.1},
	{Name: "c++", Category: CategoryCoreLanguages, Aliases: []string{"cpp"}, Weight: 1.0},
	{Name: "ruby", Category: CategoryCoreLanguages, Weight: 1.0},
	{Name: "php", Category: CategoryCoreLanguages, Weight: 0.9},
	{Name: "kotlin", Category: CategoryCoreLanguages, Weight: 1.0},
	{Name: "swift", Category: CategoryCoreLanguages, Weight: 1.0},
	{Name: "html", Category: CategoryCoreLanguages, Aliases: []string{"html5"}, Weight: 0.8},
	{Name: "css", Category: CategoryCoreLanguages, Aliases: []string{"css3"}, Weight: 0.8},

	{Name: "react", Category: CategoryFrameworks, Aliases: []string{"reactjs", "react.js"}, Weight: 1.3},
	{Name: "node.js", Category: CategoryFrameworks, Aliases: []string{"nodejs", "node"}, Weight: 1.3},
	{Name: "vue.js", Category: CategoryFrameworks, Aliases: []string{"vuejs", "vue"}, Weight: 1.1},
	{Name: "angular", Category: CategoryFrameworks, Aliases: []string{"angularjs"}, Weight: 1.1},
	{Name: "next.js", Category: CategoryFrameworks, Aliases: []string{"nextjs"}, Weight: 1.1},
	{Name: "express", Category: CategoryFrameworks, Aliases: []string{"express.js", "expressjs"}, Weight: 1.0},
	{Name: "django", Category: CategoryFrameworks, Weight: 1.1},
	{Name: "flask", Category: CategoryFrameworks, Weight: 1.0},
	{Name: "spring", Category: CategoryFrameworks, Aliases: []string{"spring boot"}, Weight: 1.1},

	{Name: "mongodb", Category: CategoryDatabases, Aliases: []string{"mongo"}, Weight: 1.2},
	{Name: "postgresql", Category: CategoryDatabases, Aliases: []string{"postgres"}, Weight: 1.2},
	{Name: "mysql", Category: CategoryDatabases, Weight: 1.0},
	{Name: "redis", Category: CategoryDatabases, Weight: 1.0},
	{Name: "sql", Category: CategoryDatabases, Weight: 1.0},
	{Name: "elasticsearch", Category: CategoryDatabases, Aliases: []string{"elastic search"}, Weight: 1.0},

	{Name: "aws", Category: CategoryCloud, Aliases: []string{"amazon web services"}, Weight: 1.2},
	{Name: "gcp", Category: CategoryCloud, Aliases: []string{"google cloud platform", "google cloud"}, Weight: 1.1},
	{Name: "azure", Category: CategoryCloud, Aliases: []string{"microsoft azure"}, Weight: 1.1},
	{Name: "firebase", Category: CategoryCloud, Weight: 0.9},
	{Name: "heroku", Category: CategoryCloud, Weight: 0.8},

	{Name: "docker", Category: CategoryTools, Weight: 1.1},
	{Name: "kubernetes", Category: CategoryTools, Aliases: []string{"k8s"}, Weight: 1.2},
	{Name: "git", Category: CategoryTools, Weight: 0.9},
	{Name: "ci/cd", Category: CategoryTools, Aliases: []string{"continuous integration"}, Weight: 1.0},
	{Name: "graphql", Category: CategoryTools, Weight: 1.0},
	{Name: "rest api", Category: CategoryTools, Aliases: []string{"restful api", "rest apis"}, Weight: 1.0},
	{Name: "jest", Category: CategoryTools, Weight: 0.8},
	{Name: "webpack", Category: CategoryTools, Weight: 0.8},
	{Name: "terraform", Category: CategoryTools, Weight: 1.0},
	{Name: "linux", Category: CategoryTools, Weight: 0.8},
	{Name: "jira", Category: CategoryTools, Weight: 0.7},
	{Name: "figma", Category: CategoryTools, Weight: 0.7},
	{Name: "agile", Category: CategoryTools, Aliases: []string{"scrum"}, Weight: 0.7},
}

// DefaultDefinitions returns a copy of the built-in skill table.
func DefaultDefinitions() []Definition {
	out := make([]Definition, len(defaultDefinitions))
	for i, d := range defaultDefinitions {
		d.Aliases = append([]string(nil), d.Aliases...)
		out[i] = d
	}
	return out
}

// DefaultDictionary builds a fresh dictionary from the built-in table.
func DefaultDictionary() *Dictionary {
	return MustNewDictionary(DefaultDefinitions())
}
