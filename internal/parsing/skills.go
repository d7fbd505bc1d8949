package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const maxSkillLineLen = 100

var (
	// Commas, bullet glyphs, hyphens and pipes all appear as skill
	// delimiters in the wild
	skillDelimiter = regexp.MustCompile(`[,•·|-]`)

	// "1. Java" style list numbering leaves bare ordinals after splitting
	ordinalPrefix = regexp.MustCompile(`^\d+\.`)
)

// extractSkills tokenizes the skills section into a deduplicated list capped
// at MaxSkills entries, in encounter order. Lines longer than 100 chars are
// treated as prose and skipped.
func extractSkills(section string) []string {
	skills := []string{}
	if section == "" {
		return skills
	}

	seen := make(map[string]bool)
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > maxSkillLineLen {
			continue
		}

		for _, token := range skillDelimiter.Split(trimmed, -1) {
			token = strings.TrimSpace(token)
			if token == "" || len(token) >= types.MaxSkillLen {
				continue
			}
			if ordinalPrefix.MatchString(token) {
				continue
			}
			if seen[token] {
				continue
			}
			seen[token] = true
			skills = append(skills, token)
			if len(skills) == types.MaxSkills {
				return skills
			}
		}
	}

	return skills
}
