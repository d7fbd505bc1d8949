// Package parsing transforms extracted resume text into structured fields.
//
// Every extractor degrades gracefully: an absent section or a section the
// regexes find nothing in yields that field's empty value, never an error.
// Resumes are unpredictable input and the product requirement is "always
// return your best partial answer".
package parsing

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/segmenting"
	"github.com/jonathan/ats-engine/internal/types"
)

// Parser extracts structured resume data from plain text.
type Parser struct {
	logger *zap.Logger
}

// New creates a Parser with an injected logger. A nil logger disables
// tracing.
func New(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse segments the text into sections and runs every field extractor,
// returning a fully populated ParsedResume. Parse never fails: text with no
// recognizable structure produces a ParsedResume with empty fields.
func (p *Parser) Parse(text string) *types.ParsedResume {
	parsed := types.NewParsedResume(text)
	if strings.TrimSpace(text) == "" {
		p.logger.Debug("empty input text, returning empty result")
		return parsed
	}

	doc := segmenting.NewDocument(text)
	p.logger.Debug("segmenting resume text",
		zap.Int("chars", len(text)),
		zap.Int("lines", doc.Lines()))

	// Contact and education fall back to the whole document when their
	// sections are absent: contact details usually sit un-sectioned at the
	// top of the page, and degrees are often listed under a header the
	// vocabulary does not know.
	parsed.Contact = extractContact(sectionOr(doc, segmenting.Contact, text))
	parsed.Summary = extractSummary(sectionText(doc, segmenting.Summary))
	parsed.Skills = extractSkills(sectionText(doc, segmenting.Skills))
	parsed.Experience = p.extractExperience(sectionText(doc, segmenting.Experience))
	parsed.Education = extractEducation(sectionOr(doc, segmenting.Education, text))
	parsed.Projects = extractProjects(sectionText(doc, segmenting.Projects))
	parsed.Achievements = extractAchievements(sectionText(doc, segmenting.Achievements))

	p.logger.Info("resume parsed",
		zap.Int("skills", len(parsed.Skills)),
		zap.Int("experience", len(parsed.Experience)),
		zap.Int("education", len(parsed.Education)),
		zap.Int("projects", len(parsed.Projects)),
		zap.Int("achievements", len(parsed.Achievements)),
		zap.Bool("contactFound", !parsed.Contact.Empty()))

	return parsed
}

// sectionText returns the section's text, or "" if the section is absent.
func sectionText(doc *segmenting.Document, kind segmenting.SectionKind) string {
	sec := doc.Find(kind)
	if sec == nil {
		return ""
	}
	return sec.Text
}

// sectionOr returns the section's text, falling back to the given text when
// the section is absent or empty.
func sectionOr(doc *segmenting.Document, kind segmenting.SectionKind, fallback string) string {
	if text := sectionText(doc, kind); text != "" {
		return text
	}
	return fallback
}
