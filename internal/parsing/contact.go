package parsing

import (
	"regexp"

	"github.com/jonathan/ats-engine/internal/types"
)

var (
	// RFC-loose on purpose: resumes contain plenty of near-valid addresses
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)

	// (NNN) NNN-NNNN, dashed/dotted/spaced US 10-digit forms, or +91 mobiles
	phonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}|\+91[-.\s]?[0-9]{10}`)

	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9-]+`)
)

// extractContact pulls contact fields out of the given text. Each field is
// the first match of its pattern, independently extracted; a field with no
// match stays empty. The matched substring is stored as-is, including the
// domain for profile links.
func extractContact(text string) types.Contact {
	return types.Contact{
		Email:    emailPattern.FindString(text),
		Phone:    phonePattern.FindString(text),
		LinkedIn: linkedinPattern.FindString(text),
		GitHub:   githubPattern.FindString(text),
	}
}
