package scoring

// keywordWeight pairs an industry keyword with its bonus weight (2-5).
type keywordWeight struct {
	Keyword string
	Weight  int
}

// keywordWeights is the fixed dictionary the keyword bonus scans for.
// Order matters: keywordsFound reports matches in dictionary order, not by
// weight, so the table is a slice rather than a map. The keywords and
// weights are calibration policy; scoring consumers depend on these exact
// values.
var keywordWeights = []keywordWeight{
	// Programming languages
	{"java", 5}, {"python", 5}, {"javascript", 5}, {"csharp", 4}, {"cpp", 4},
	{"typescript", 5}, {"golang", 4}, {"rust", 4}, {"ruby", 3}, {"php", 3},

	// Web technologies
	{"react", 5}, {"angular", 5}, {"vue", 4}, {"nodejs", 5}, {"express", 4},
	{"django", 4}, {"fastapi", 4}, {"spring", 5}, {"sql", 5}, {"mongodb", 4},

	// Cloud & devops
	{"aws", 5}, {"azure", 5}, {"gcp", 5}, {"docker", 5}, {"kubernetes", 5},
	{"terraform", 4}, {"ci/cd", 5}, {"jenkins", 4}, {"gitlab", 4},

	// Methodologies & practices
	{"agile", 4}, {"scrum", 4}, {"kanban", 3}, {"tdd", 4}, {"microservices", 5},
	{"rest api", 5}, {"graphql", 4}, {"git", 5}, {"github", 4},

	// Soft skills
	{"leadership", 3}, {"communication", 3}, {"teamwork", 2}, {"problem solving", 3},
	{"project management", 3}, {"mentoring", 3},
}
