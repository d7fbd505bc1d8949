package parsing

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/segmenting"
	"github.com/jonathan/ats-engine/internal/types"
)

// monthAlt matches full and abbreviated English month names.
const monthAlt = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// periodPattern recognizes the date-range shapes that anchor an experience
// entry: "January-February, 2025", "Jan 2020 - Mar 2022", "01/2020 -
// 12/2022", "2019 - 2023", and open-ended ranges ending in Present/Current.
var periodPattern = regexp.MustCompile(`(?i)` +
	monthAlt + `\s*[-–]\s*` + monthAlt + `,?\s*\d{4}` +
	`|` + monthAlt + `\.?,?\s*\d{4}\s*[-–—]\s*(?:` + monthAlt + `\.?,?\s*\d{4}|Present|Current)` +
	`|\d{1,2}/\d{4}\s*[-–]\s*(?:\d{1,2}/\d{4}|Present|Current)` +
	`|\d{4}\s*[-–]\s*(?:\d{4}|Present|Current)` +
	`|\b(?:Present|Current)\b`)

// entryOrdinal strips "1." style numbering from entry title lines.
var entryOrdinal = regexp.MustCompile(`^\d+\.\s*`)

// linkLabel strips the uppercase link captions resume builders append next
// to project and job titles.
var linkLabel = regexp.MustCompile(`\b(?:GITHUB|LIVE SITE|LIVE DEMO|LINK)\b`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// walkState names the positions of the experience line walk.
type walkState int

const (
	// stateSeeking: no entry open; plain lines are remembered as company
	// candidates for the next dated line.
	stateSeeking walkState = iota
	// stateEntryBody: an entry is open; lines accumulate as description
	// until the next dated line or section header.
	stateEntryBody
)

// prevLine remembers the last non-empty line seen, and whether it could
// serve as the company of an entry opened on the following line.
type prevLine struct {
	text   string
	plain  bool // not a bullet, not a dated line
	inBody bool // already appended to the open entry's description
}

// extractExperience walks the experience section as a finite-state pass over
// its non-empty lines. A non-bullet line matching the period pattern opens a
// new entry: the matched date range becomes the period, the immediately
// preceding plain line (if any) becomes the company, and the rest of the
// line, cleaned of ordinals and link labels, becomes the title. Subsequent
// lines accumulate as description until the next dated line or a section
// header. Entries without a title are dropped; at most MaxExperience entries
// are kept, in encounter order.
func (p *Parser) extractExperience(section string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	if section == "" {
		return entries
	}

	var cur *types.ExperienceEntry
	var prev prevLine
	state := stateSeeking

	flush := func() {
		if cur != nil && cur.Title != "" && len(entries) < types.MaxExperience {
			entries = append(entries, *cur)
		}
		cur = nil
	}

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		isBullet := strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")
		dateLoc := periodPattern.FindStringIndex(line)

		switch {
		case dateLoc != nil && !isBullet:
			// A dated non-bullet line opens a new entry. Claim the
			// preceding plain line as the company, pulling it back out of
			// the previous entry's description if it landed there.
			company := ""
			if prev.plain {
				company = prev.text
				if prev.inBody && cur != nil && len(cur.Description) > 0 {
					cur.Description = cur.Description[:len(cur.Description)-1]
				}
			}
			flush()

			cur = &types.ExperienceEntry{
				Title:       cleanTitle(line[:dateLoc[0]] + " " + line[dateLoc[1]:]),
				Company:     company,
				Period:      strings.TrimSpace(line[dateLoc[0]:dateLoc[1]]),
				Description: []string{},
			}
			prev = prevLine{text: line, plain: false}
			state = stateEntryBody

		case segmenting.IsHeaderLine(line):
			// Next section starts; the walk is done
			flush()
			return entries

		case state == stateEntryBody && cur != nil:
			text := stripBullet(line)
			if text != "" {
				cur.Description = append(cur.Description, text)
			}
			prev = prevLine{text: text, plain: !isBullet && dateLoc == nil, inBody: true}

		default:
			// Seeking: remember this line as a company candidate
			prev = prevLine{text: line, plain: !isBullet && dateLoc == nil}
		}
	}
	flush()

	if len(entries) == 0 {
		// Some layouts carry no date ranges at all; diagnose rather than
		// synthesize entries
		p.logger.Debug("no date patterns found in experience section, emitting no entries",
			zap.Int("sectionChars", len(section)))
	}
	return entries
}

// cleanTitle normalizes what remains of an entry's opening line after the
// date range is stripped out.
func cleanTitle(text string) string {
	text = entryOrdinal.ReplaceAllString(strings.TrimSpace(text), "")
	text = linkLabel.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "|", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.Trim(text, " -–—,:")
	if len(text) > types.MaxTitleLen {
		text = text[:types.MaxTitleLen]
	}
	return text
}

// stripBullet removes a leading bullet glyph from a description line.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "•-–·* \t"))
}
