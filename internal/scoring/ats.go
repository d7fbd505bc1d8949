// Package scoring computes ATS scores for parsed resumes.
//
// The deterministic scorer is a pure function over a ParsedResume: no I/O,
// no randomness, reproducible bit-for-bit. The numeric thresholds and
// weights are policy, not incidental — dashboards and downstream consumers
// are calibrated against them.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// Component weights of the final score.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.30
	educationWeight  = 0.20
	keywordWeightPct = 0.10
)

// yearsPerRole is the fixed years-of-experience approximation applied per
// position. Period strings are captured but never parsed; see DESIGN.md.
const yearsPerRole = 2.0

const maxKeywordsReported = 5

// weightLabels is the display form of the component weights carried on
// every breakdown.
var weightLabels = map[string]string{
	"skills":     "40%",
	"experience": "30%",
	"education":  "20%",
	"keywords":   "10%",
}

// Score computes the deterministic weighted ATS score for a parsed resume:
// skills 40%, experience 30%, education 20%, keyword bonus 10%, rounded and
// clamped to [0,100]. Components are rounded independently only for the
// breakdown; the final score is computed from the unrounded values.
func Score(parsed *types.ParsedResume) *types.AtsResult {
	if parsed == nil {
		parsed = types.NewParsedResume("")
	}

	skills := skillsScore(parsed.Skills)
	experience := experienceScore(parsed.Experience)
	education := educationScore(parsed.Education)
	keywords, found := keywordBonus(parsed)

	final := math.Round(skills*skillsWeight +
		experience*experienceWeight +
		education*educationWeight +
		keywords*keywordWeightPct)

	return &types.AtsResult{
		AtsScore: clampInt(int(final), 0, 100),
		ScoreBreakdown: types.ScoreBreakdown{
			Skills:     int(math.Round(skills)),
			Experience: int(math.Round(experience)),
			Education:  int(math.Round(education)),
			Keywords:   int(math.Round(keywords)),
			Weights:    weightLabels,
		},
		KeywordsFound: found,
		ResumeMetrics: types.ResumeMetrics{
			TotalSkills:      len(parsed.Skills),
			TotalExperience:  len(parsed.Experience),
			EducationEntries: len(parsed.Education),
		},
	}
}

// skillsScore rates skill count on a 0-40 scale: steep growth up to 3
// skills, moderate up to 8, then asymptotic toward 40.
func skillsScore(skills []string) float64 {
	n := float64(len(skills))

	var score float64
	switch {
	case n < 3:
		score = n * 8
	case n < 8:
		score = 24 + (n-3)*3
	default:
		score = math.Min(39+(n-8)*0.1, 40)
	}
	return math.Min(score, 40)
}

// experienceScore rates positions on a 0-30 scale via the fixed
// years-per-role estimate.
func experienceScore(experience []types.ExperienceEntry) float64 {
	years := float64(len(experience)) * yearsPerRole

	var score float64
	switch {
	case years < 1:
		score = years * 10
	case years < 3:
		score = 10 + (years-1)*5
	case years < 7:
		score = 20 + (years-3)*2.5
	default:
		score = 30
	}
	return math.Min(score, 30)
}

// educationScore sums degree-level points per entry, clamped to 20.
func educationScore(education []string) float64 {
	score := 0.0
	for _, entry := range education {
		lower := strings.ToLower(entry)
		switch {
		case strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate"):
			score += 20
		case strings.Contains(lower, "master") || strings.Contains(lower, "m."):
			score += 15
		case strings.Contains(lower, "bachelor") || strings.Contains(lower, "b."):
			score += 10
		case strings.Contains(lower, "diploma") || strings.Contains(lower, "certificate"):
			score += 5
		default:
			score += 3
		}
	}
	return math.Min(score, 20)
}

// keywordBonus scans skills, experience titles and descriptions, and the
// summary for the weighted keyword dictionary. Each match contributes
// weight/10 capped at 1; the total is clamped to 10. Returns the bonus and
// the first five matched keywords in dictionary order.
func keywordBonus(parsed *types.ParsedResume) (float64, []string) {
	parts := make([]string, 0, len(parsed.Skills)+len(parsed.Experience)*4+1)
	parts = append(parts, parsed.Skills...)
	for _, exp := range parsed.Experience {
		parts = append(parts, exp.Title)
		parts = append(parts, exp.Description...)
	}
	if parsed.Summary != "" {
		parts = append(parts, parsed.Summary)
	}
	combined := strings.ToLower(strings.Join(parts, " "))

	bonus := 0.0
	found := []string{}
	for _, kw := range keywordWeights {
		if strings.Contains(combined, kw.Keyword) {
			bonus += math.Min(float64(kw.Weight)/10, 1)
			found = append(found, kw.Keyword)
		}
	}

	if len(found) > maxKeywordsReported {
		found = found[:maxKeywordsReported]
	}
	return math.Min(bonus, 10), found
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
