// Package segmenting recovers named sections from raw resume text.
//
// Resumes have no fixed schema: headers may be ALL-CAPS, mixed case, or
// embedded in longer lines, and content lines frequently mention section
// words ("5 years of experience in ..."). The header test below is the result
// of iterative tuning against real resume layouts and intentionally errs
// toward treating ambiguous lines as content.
package segmenting

import (
	"regexp"
	"strings"
	"unicode"
)

// SectionKind names a recognized resume section.
type SectionKind string

// The section kinds the parser extracts.
const (
	Contact      SectionKind = "contact"
	Summary      SectionKind = "summary"
	Skills       SectionKind = "skills"
	Experience   SectionKind = "experience"
	Education    SectionKind = "education"
	Projects     SectionKind = "projects"
	Achievements SectionKind = "achievements"
)

// sectionSynonyms maps each kind to the header keywords that open it.
// Matching is a case-insensitive substring test against the whole line, so a
// header embedded in a longer line still starts the section.
var sectionSynonyms = map[SectionKind][]string{
	Contact:      {"contact", "personal"},
	Summary:      {"summary", "objective", "professional summary"},
	Skills:       {"skills", "technical skills", "competencies"},
	Experience:   {"experience", "work experience", "employment", "professional experience", "career history", "work history"},
	Education:    {"education", "academic", "qualifications"},
	Projects:     {"projects", "portfolio"},
	Achievements: {"achievements", "awards", "certifications"},
}

// headerVocabulary is the fixed set of keywords a line must lead with to
// count as a section boundary. It covers every section kind plus headers the
// parser does not extract (certifications, languages, references) so those
// still terminate the preceding section.
var headerVocabulary = []string{
	"professional experience", "professional summary", "work experience",
	"career history", "work history", "technical skills", "competencies",
	"qualifications", "certifications", "achievements", "experience",
	"employment", "references", "education", "objective", "portfolio",
	"languages", "projects", "academic", "contact", "personal", "summary",
	"skills", "awards",
}

const maxHeaderLen = 60

// minHeaderRatio is the share of a line the matched keyword must occupy for
// the line to be a header rather than content that mentions a section word.
// Tuned value; changing it silently changes extraction quality.
const minHeaderRatio = 0.7

// dateSignal matches years, month names and open-ended range words. A line
// carrying any of these is an entry line, never a header.
var dateSignal = regexp.MustCompile(`(?i)\b((19|20)\d{2}|january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec|present|current)\b`)

// contentSignals mark lines that talk about a position rather than naming a
// section ("Remote", "Acme Corp, Boston", "Engineer at Acme").
var contentSignals = []string{"remote", "location", "at ", "in "}

// Document is a line-indexed view over extracted resume text.
type Document struct {
	lines []string
}

// Section is a window over a Document's lines: the half-open line range
// [StartLine, EndLine) belonging to one named section, with its joined,
// trimmed text materialized.
type Section struct {
	Kind      SectionKind
	StartLine int
	EndLine   int
	Text      string
}

// NewDocument splits text into lines with normalized line endings.
func NewDocument(text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return &Document{lines: strings.Split(text, "\n")}
}

// Lines returns the document's line count.
func (d *Document) Lines() int {
	return len(d.lines)
}

// Find locates the section of the given kind. The section starts on the line
// after the first line containing one of the kind's keywords and runs until
// the next true header line, or end of document if none follows. Returns nil
// if no keyword line exists; an absent section is a normal state, not an
// error.
func (d *Document) Find(kind SectionKind) *Section {
	keywords := sectionSynonyms[kind]

	start := -1
	for i, line := range d.lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				start = i + 1
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return nil
	}

	end := len(d.lines)
	for i := start; i < len(d.lines); i++ {
		if IsHeaderLine(d.lines[i]) {
			end = i
			break
		}
	}

	return &Section{
		Kind:      kind,
		StartLine: start,
		EndLine:   end,
		Text:      strings.TrimSpace(strings.Join(d.lines[start:end], "\n")),
	}
}

// IsHeaderLine reports whether a line is a true section header rather than
// content that happens to mention a section word. A header is short, leads
// with a vocabulary keyword that occupies at least 70% of the line, carries
// nothing after the keyword but punctuation or short connector words, and
// shows none of the signals of an entry line (dates, bullets, emails,
// location words).
func IsHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeaderLen {
		return false
	}

	if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "·") {
		return false
	}
	if strings.Contains(trimmed, "@") {
		return false
	}

	lower := strings.ToLower(trimmed)
	if dateSignal.MatchString(lower) {
		return false
	}
	for _, signal := range contentSignals {
		if strings.Contains(lower, signal) {
			return false
		}
	}

	for _, kw := range headerVocabulary {
		if !strings.HasPrefix(lower, kw) {
			continue
		}
		if float64(len(kw)) < minHeaderRatio*float64(len(lower)) {
			continue
		}
		if headerRemainderOK(lower[len(kw):]) {
			return true
		}
	}
	return false
}

// headerRemainderOK accepts what may trail the keyword on a header line:
// punctuation and short connector words ("skills:", "education -",
// "skills & more"), nothing longer.
func headerRemainderOK(rest string) bool {
	words := strings.FieldsFunc(rest, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if len(w) > 3 {
			return false
		}
	}
	return true
}
