package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-engine/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	parsed := types.NewParsedResume("")
	parsed.Contact.Email = "a@b.io"
	parsed.Skills = []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "Terraform", "AWS"}
	parsed.Experience = []types.ExperienceEntry{{Title: "Engineer", Period: "2019 - 2023"}}
	parsed.Education = []string{"B.S. Computer Science"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(parsed)

	out := buf.String()
	assert.Contains(t, out, "PARSED RESUME")
	assert.Contains(t, out, "a@b.io")
	assert.Contains(t, out, "Skills (7):")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "Engineer (2019 - 2023)")
	assert.Contains(t, out, "B.S. Computer Science")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScoreReport(t *testing.T) {
	report := &types.ScoreReport{
		AtsScore: 17,
		ScoreBreakdown: &types.ScoreBreakdown{
			Skills: 27, Experience: 15, Education: 10, Keywords: 2,
		},
		KeywordMatches: []string{"python", "sql", "docker"},
		Source:         types.SourceDeterministic,
		FallbackUsed:   true,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(report)

	out := buf.String()
	assert.Contains(t, out, "ATS Score: 17/100")
	assert.Contains(t, out, "hybrid-calculation")
	assert.Contains(t, out, "Skills:     27 (40%)")
	assert.Contains(t, out, "python, sql, docker")
}

func TestNewLogger_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "unknown", ""} {
		logger := NewLogger(level)
		assert.NotNil(t, logger, "level %q", level)
	}
}
