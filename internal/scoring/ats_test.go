package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/types"
)

func resumeWithSkills(skills ...string) *types.ParsedResume {
	parsed := types.NewParsedResume("")
	parsed.Skills = skills
	return parsed
}

func TestScore_NilAndEmptyInput(t *testing.T) {
	for _, parsed := range []*types.ParsedResume{nil, types.NewParsedResume("")} {
		result := Score(parsed)
		require.NotNil(t, result)
		assert.Equal(t, 0, result.AtsScore)
		assert.Equal(t, 0, result.ScoreBreakdown.Skills)
		assert.Equal(t, 0, result.ScoreBreakdown.Experience)
		assert.Equal(t, 0, result.ScoreBreakdown.Education)
		assert.Equal(t, 0, result.ScoreBreakdown.Keywords)
		assert.Empty(t, result.KeywordsFound)
	}
}

func TestScore_ThreeKeywordSkills(t *testing.T) {
	result := Score(resumeWithSkills("Java", "Python", "SQL"))

	// skills 24, keyword bonus 1.5: round(24*0.4 + 1.5*0.1) = 10
	assert.Equal(t, 10, result.AtsScore)
	assert.Equal(t, 24, result.ScoreBreakdown.Skills)
	assert.Equal(t, 0, result.ScoreBreakdown.Experience)
	assert.Equal(t, 0, result.ScoreBreakdown.Education)
	assert.Equal(t, 2, result.ScoreBreakdown.Keywords)
	assert.Equal(t, []string{"java", "python", "sql"}, result.KeywordsFound)
	assert.Equal(t, 3, result.ResumeMetrics.TotalSkills)
}

func TestScore_TenPlainSkills(t *testing.T) {
	skills := make([]string, 10)
	for i := range skills {
		skills[i] = fmt.Sprintf("niche%d", i)
	}

	result := Score(resumeWithSkills(skills...))

	// skills 39.2, nothing else: round(39.2*0.4) = 16
	assert.Equal(t, 16, result.AtsScore)
	assert.Equal(t, 39, result.ScoreBreakdown.Skills)
	assert.Empty(t, result.KeywordsFound)
}

func TestScore_Deterministic(t *testing.T) {
	parsed := resumeWithSkills("Go", "Docker", "SQL")
	parsed.Experience = []types.ExperienceEntry{{Title: "Engineer", Description: []string{"Built services"}}}
	parsed.Education = []string{"B.S. Computer Science"}

	first := Score(parsed)
	second := Score(parsed)
	assert.Equal(t, first, second)
}

func TestScore_WeightLabels(t *testing.T) {
	result := Score(resumeWithSkills("Go"))
	assert.Equal(t, map[string]string{
		"skills":     "40%",
		"experience": "30%",
		"education":  "20%",
		"keywords":   "10%",
	}, result.ScoreBreakdown.Weights)
}

func TestSkillsScore(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0}, {1, 8}, {2, 16},
		{3, 24}, {5, 30}, {7, 36},
		{8, 39}, {10, 39.2}, {18, 40}, {30, 40},
	}

	for _, tt := range tests {
		skills := make([]string, tt.count)
		assert.InDelta(t, tt.want, skillsScore(skills), 1e-9, "count %d", tt.count)
	}
}

func TestSkillsScore_Monotonic(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 40; n++ {
		score := skillsScore(make([]string, n))
		assert.GreaterOrEqual(t, score, prev, "count %d", n)
		assert.LessOrEqual(t, score, 40.0)
		prev = score
	}
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		positions int
		want      float64
	}{
		{0, 0}, {1, 15}, {2, 22.5}, {3, 27.5}, {4, 30}, {15, 30},
	}

	for _, tt := range tests {
		entries := make([]types.ExperienceEntry, tt.positions)
		assert.InDelta(t, tt.want, experienceScore(entries), 1e-9, "positions %d", tt.positions)
	}
}

func TestEducationScore(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    float64
	}{
		{"none", nil, 0},
		{"phd", []string{"PhD in Computer Science"}, 20},
		{"doctorate", []string{"Doctorate of Philosophy"}, 20},
		{"master", []string{"Master of Science"}, 15},
		{"abbreviated masters", []string{"M.S. Computer Science"}, 15},
		{"bachelor", []string{"Bachelor of Engineering"}, 10},
		{"abbreviated bachelors", []string{"Stanford University, B.S. Computer Science, 2019"}, 10},
		{"diploma", []string{"Diploma in Electronics"}, 5},
		{"certificate", []string{"Certificate in Cloud Computing"}, 5},
		{"generic entry", []string{"Springfield High, 2015"}, 3},
		{"sums and caps", []string{"PhD in Physics", "Master of Arts"}, 20},
		{"two bachelors", []string{"Bachelor of Arts", "Bachelor of Science"}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, educationScore(tt.entries), 1e-9)
		})
	}
}

func TestKeywordBonus_DictionaryOrderAndCap(t *testing.T) {
	parsed := resumeWithSkills("Docker", "AWS", "React", "Java", "SQL", "Python", "Git")

	bonus, found := keywordBonus(parsed)

	// Seven matches at weight 5 each, reported capped at five in
	// dictionary order
	assert.InDelta(t, 3.5, bonus, 1e-9)
	assert.Equal(t, []string{"java", "python", "react", "sql", "aws"}, found)
}

func TestKeywordBonus_ScansTitlesDescriptionsAndSummary(t *testing.T) {
	parsed := types.NewParsedResume("")
	parsed.Experience = []types.ExperienceEntry{{
		Title:       "Kubernetes Platform Engineer",
		Description: []string{"Operated Terraform stacks"},
	}}
	parsed.Summary = "Practices TDD daily"

	bonus, found := keywordBonus(parsed)

	assert.InDelta(t, 0.5+0.4+0.4, bonus, 1e-9)
	assert.Equal(t, []string{"kubernetes", "terraform", "tdd"}, found)
}

func TestKeywordBonus_ClampedAtTen(t *testing.T) {
	parsed := types.NewParsedResume("")
	var all []string
	for _, kw := range keywordWeights {
		all = append(all, kw.Keyword)
	}
	parsed.Summary = fmt.Sprint(all)

	bonus, found := keywordBonus(parsed)

	assert.InDelta(t, 10, bonus, 1e-9)
	assert.Len(t, found, 5)
}

func TestScore_FullyLoadedResume(t *testing.T) {
	parsed := types.NewParsedResume("")
	for i := 0; i < types.MaxSkills; i++ {
		parsed.Skills = append(parsed.Skills, fmt.Sprintf("skill%d", i))
	}
	for i := 0; i < types.MaxExperience; i++ {
		parsed.Experience = append(parsed.Experience, types.ExperienceEntry{Title: "Engineer"})
	}
	parsed.Education = []string{"PhD in Computer Science"}
	var all []string
	for _, kw := range keywordWeights {
		all = append(all, kw.Keyword)
	}
	parsed.Summary = fmt.Sprint(all)

	result := Score(parsed)

	// 40*0.4 + 30*0.3 + 20*0.2 + 10*0.1
	assert.Equal(t, 30, result.AtsScore)
	assert.Equal(t, 40, result.ScoreBreakdown.Skills)
	assert.Equal(t, 30, result.ScoreBreakdown.Experience)
	assert.Equal(t, 20, result.ScoreBreakdown.Education)
	assert.Equal(t, 10, result.ScoreBreakdown.Keywords)
}

func TestScore_AlwaysInRange(t *testing.T) {
	inputs := []*types.ParsedResume{
		nil,
		types.NewParsedResume(""),
		resumeWithSkills("Go"),
		resumeWithSkills("Java", "Python", "SQL", "AWS", "Docker", "React", "Git", "TDD"),
	}

	for _, parsed := range inputs {
		result := Score(parsed)
		assert.GreaterOrEqual(t, result.AtsScore, 0)
		assert.LessOrEqual(t, result.AtsScore, 100)
	}
}
