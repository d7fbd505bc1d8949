package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const maxEducationLineLen = 150

// degreeKeywords is the closed set of degree families a line may mention.
// Matching is case-insensitive substring, same as the header synonyms.
var degreeKeywords = []string{
	"bachelor", "b.e", "b.tech", "b.s", "b.a", "b.com",
	"master", "m.tech", "m.s", "m.a", "mba",
	"ph.d", "phd",
	"diploma",
	"associate",
	"certificate",
}

// institutionKeywords mark lines naming where a degree was earned.
var institutionKeywords = []string{"university", "college", "institute", "school", "academy"}

var graduationYear = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// extractEducation collects education entries from the given text: lines
// mentioning a degree family, an institution, or a graduation year. An
// institution line immediately followed by a degree/year line merges into a
// single "<institution>, <degree>" entry. Entries are deduplicated by exact
// string and capped at MaxEducation.
func extractEducation(text string) []string {
	education := []string{}
	if text == "" {
		return education
	}

	seen := make(map[string]bool)
	add := func(entry string) {
		if !seen[entry] && len(education) < types.MaxEducation {
			seen[entry] = true
			education = append(education, entry)
		}
	}

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len(line) > maxEducationLineLen {
			continue
		}
		lower := strings.ToLower(line)

		if containsAny(lower, institutionKeywords) {
			// Merge "Stanford University" + "B.S. Computer Science, 2021"
			// into one entry when the degree line directly follows
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if next != "" && len(next) <= maxEducationLineLen && isDegreeOrDateLine(next) {
					add(line + ", " + next)
					i++
					continue
				}
			}
			add(line)
			continue
		}

		if isDegreeOrDateLine(line) {
			add(line)
		}
	}

	return education
}

func isDegreeOrDateLine(line string) bool {
	return containsAny(strings.ToLower(line), degreeKeywords) || graduationYear.MatchString(line)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
