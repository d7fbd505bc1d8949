package types

import "github.com/go-playground/validator/v10"

// ScoreBreakdown itemizes the deterministic ATS score by component. Each
// component is rounded to an integer; Weights carries the display labels the
// candidate dashboard renders next to each component.
type ScoreBreakdown struct {
	Skills     int               `json:"skills"`
	Experience int               `json:"experience"`
	Education  int               `json:"education"`
	Keywords   int               `json:"keywords"`
	Weights    map[string]string `json:"weights,omitempty"`
}

// ResumeMetrics carries raw counts alongside a score so consumers can see
// what the score was computed from.
type ResumeMetrics struct {
	TotalSkills      int `json:"totalSkills"`
	TotalExperience  int `json:"totalExperience"`
	EducationEntries int `json:"educationEntries"`
}

// AtsResult is the deterministic scorer's output: a 0-100 score with its full
// breakdown. It is derived purely from a ParsedResume and is recomputable
// bit-identically from the same input.
type AtsResult struct {
	AtsScore       int            `json:"atsScore"`
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`
	KeywordsFound  []string       `json:"keywordsFound"`
	ResumeMetrics  ResumeMetrics  `json:"resumeMetrics"`
}

// ExternalScore is the payload an external (AI-assisted) scorer returns.
// Only AtsScore is required; the rest is advisory detail persisted as
// atsScoreDetails when present.
type ExternalScore struct {
	AtsScore       int      `json:"atsScore" validate:"gte=0,lte=100"`
	Reasoning      string   `json:"reasoning,omitempty"`
	Strengths      []string `json:"strengths,omitempty"`
	Improvements   []string `json:"improvements,omitempty"`
	KeywordMatches []string `json:"keywordMatches,omitempty"`
}

// Validate validates the ExternalScore using the validator.
func (s *ExternalScore) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Score sources recorded on a ScoreReport.
const (
	SourceAI            = "gemini-ai"
	SourceDeterministic = "hybrid-calculation"
)

// ScoreReport is the envelope the scoring engine returns: either the external
// scorer's result or the deterministic fallback, with FallbackUsed marking
// which path produced it.
type ScoreReport struct {
	AtsScore       int             `json:"atsScore"`
	ScoreBreakdown *ScoreBreakdown `json:"scoreBreakdown,omitempty"`
	KeywordsFound  []string        `json:"keywordsFound,omitempty"`
	Reasoning      string          `json:"reasoning,omitempty"`
	Strengths      []string        `json:"strengths,omitempty"`
	Improvements   []string        `json:"improvements,omitempty"`
	KeywordMatches []string        `json:"keywordMatches,omitempty"`
	Source         string          `json:"source"`
	FallbackUsed   bool            `json:"fallbackUsed"`
}
