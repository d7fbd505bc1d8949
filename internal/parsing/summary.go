package parsing

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	maxSummaryLineLen = 200
	maxSummaryLines   = 3
)

// extractSummary joins the first three reasonable lines of the summary
// section into a single string capped at MaxSummaryLen. Unlike contact
// extraction there is no whole-document fallback: a resume without a summary
// section has no summary.
func extractSummary(section string) string {
	if section == "" {
		return ""
	}

	lines := make([]string, 0, maxSummaryLines)
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) >= maxSummaryLineLen {
			continue
		}
		lines = append(lines, trimmed)
		if len(lines) == maxSummaryLines {
			break
		}
	}

	summary := strings.Join(lines, " ")
	if len(summary) > types.MaxSummaryLen {
		summary = summary[:types.MaxSummaryLen]
	}
	return summary
}
