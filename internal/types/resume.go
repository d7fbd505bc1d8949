// Package types provides type definitions for structured data used throughout the ATS engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Parse-time caps. Resumes are adversarial input; every list field is bounded
// so a pathological document cannot blow up the candidate record.
const (
	MaxSkills       = 30
	MaxSkillLen     = 50
	MaxExperience   = 15
	MaxTitleLen     = 150
	MaxEducation    = 5
	MaxProjects     = 5
	MaxAchievements = 10
	MaxSummaryLen   = 500
)

// Contact holds contact details extracted from a resume. Every field is
// independently extracted and optional; an empty string means not found.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Empty reports whether no contact field was extracted.
func (c Contact) Empty() bool {
	return c.Email == "" && c.Phone == "" && c.LinkedIn == "" && c.GitHub == ""
}

// ExperienceEntry represents one position extracted from the experience
// section. Title is the only required field; an entry without a title is
// never emitted.
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	Period      string   `json:"period,omitempty"`
	Description []string `json:"description"`
}

// ProjectEntry represents one project with its title and description lines.
type ProjectEntry struct {
	Title       string   `json:"title"`
	Description []string `json:"description"`
}

// ParsedResume is the aggregate result of parsing one resume. It is created
// once per parse, immutable afterward, and owned by the caller (the candidate
// record). JSON field names match the candidate store's extractedData.resume
// shape.
type ParsedResume struct {
	RawText      string            `json:"rawText"`
	Contact      Contact           `json:"contact"`
	Summary      string            `json:"summary"`
	Skills       []string          `json:"skills"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []string          `json:"education"`
	Projects     []ProjectEntry    `json:"projects"`
	Achievements []string          `json:"achievements"`
}

// NewParsedResume returns an all-empty ParsedResume for the given raw text.
// Every list field is non-nil so the JSON form always carries [] rather than
// null, matching what the frontend expects.
func NewParsedResume(rawText string) *ParsedResume {
	return &ParsedResume{
		RawText:      rawText,
		Skills:       []string{},
		Experience:   []ExperienceEntry{},
		Education:    []string{},
		Projects:     []ProjectEntry{},
		Achievements: []string{},
	}
}

// IsEmpty reports whether parsing produced no structured data at all.
func (r *ParsedResume) IsEmpty() bool {
	return r.Contact.Empty() && r.Summary == "" &&
		len(r.Skills) == 0 && len(r.Experience) == 0 &&
		len(r.Education) == 0 && len(r.Projects) == 0 &&
		len(r.Achievements) == 0
}
