package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the extracted fields.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	if parsed.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", parsed.Contact.Email))
	}
	if parsed.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", parsed.Contact.Phone))
	}
	if parsed.Contact.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", parsed.Contact.LinkedIn))
	}
	sb.WriteString("\n")

	if len(parsed.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(parsed.Skills)))
		count := min(len(parsed.Skills), maxItemsToShow)
		sb.WriteString("  " + strings.Join(parsed.Skills[:count], ", ") + "\n")
		if len(parsed.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(parsed.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(parsed.Experience)))
		count := min(len(parsed.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := parsed.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Period != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", exp.Period))
			}
			sb.WriteString("\n")
		}
		if len(parsed.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(parsed.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(parsed.Education)))
		count := min(len(parsed.Education), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", parsed.Education[i]))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the score with its breakdown and keyword matches.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score: %d/100\n", report.AtsScore))
	sb.WriteString(fmt.Sprintf("Source:    %s\n", report.Source))
	if report.FallbackUsed {
		sb.WriteString("Fallback:  deterministic calculation used\n")
	}
	sb.WriteString("\n")

	if report.ScoreBreakdown != nil {
		b := report.ScoreBreakdown
		sb.WriteString("Breakdown:\n")
		sb.WriteString(fmt.Sprintf("  Skills:     %d (40%%)\n", b.Skills))
		sb.WriteString(fmt.Sprintf("  Experience: %d (30%%)\n", b.Experience))
		sb.WriteString(fmt.Sprintf("  Education:  %d (20%%)\n", b.Education))
		sb.WriteString(fmt.Sprintf("  Keywords:   %d (10%%)\n", b.Keywords))
	}

	if len(report.KeywordMatches) > 0 {
		keywords := strings.Join(report.KeywordMatches, ", ")
		if len(keywords) > 40 {
			keywords = keywords[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords:  %s\n", keywords))
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}
