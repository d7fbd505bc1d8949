package parsing

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	minProjectTitleLen = 5
	maxProjectTitleLen = 80
	minDescriptionLen  = 10
	maxAchievementLen  = 150
)

// extractProjects reads the projects section as alternating title and
// description lines: a short, non-indented line starts a new project, and
// longer lines accumulate as its description until the next title-shaped
// line. Capped at MaxProjects entries.
func extractProjects(section string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}
	if section == "" {
		return projects
	}

	var cur *types.ProjectEntry
	flush := func() {
		if cur != nil && len(projects) < types.MaxProjects {
			projects = append(projects, *cur)
		}
		cur = nil
	}

	for _, raw := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		indented := strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
		if !indented && len(trimmed) > minProjectTitleLen && len(trimmed) < maxProjectTitleLen {
			flush()
			cur = &types.ProjectEntry{Title: trimmed, Description: []string{}}
			continue
		}

		if cur != nil && len(trimmed) > minDescriptionLen {
			cur.Description = append(cur.Description, trimmed)
		}
	}
	flush()

	return projects
}

// extractAchievements keeps every line of plausible achievement length
// verbatim, capped at MaxAchievements.
func extractAchievements(section string) []string {
	achievements := []string{}
	if section == "" {
		return achievements
	}

	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > minDescriptionLen && len(trimmed) < maxAchievementLen {
			achievements = append(achievements, trimmed)
			if len(achievements) == types.MaxAchievements {
				break
			}
		}
	}

	return achievements
}
