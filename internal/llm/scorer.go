package llm

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/prompts"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/types"
)

// AtsScorer asks Gemini for an ATS assessment of a parsed resume. It
// implements the scoring engine's ExternalScorer seam; every failure mode
// (API error, timeout, malformed or out-of-range JSON) surfaces as an error
// so the engine takes its deterministic fallback.
type AtsScorer struct {
	client Client
	config *Config
	logger *zap.Logger
}

// NewAtsScorer creates a Gemini-backed scorer.
func NewAtsScorer(ctx context.Context, config *Config, apiKey string, logger *zap.Logger) (*AtsScorer, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, err
	}

	return &AtsScorer{client: client, config: config, logger: logger}, nil
}

// TryScore requests an AI ATS score for the parsed resume within the
// configured timeout. The response is schema-validated and range-checked
// before being returned.
func (s *AtsScorer) TryScore(ctx context.Context, parsed *types.ParsedResume) (*types.ExternalScore, error) {
	template := prompts.MustGet("scoring.json", "ats-score")
	prompt := prompts.Format(template, map[string]string{
		"Resume": FormatResume(parsed),
	})

	timeout := s.config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.logger.Debug("requesting AI ATS score", zap.String("model", s.config.GetModel(TierStandard)))

	responseText, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "ats scoring request", Cause: err}
	}

	return decodeExternalScore(responseText)
}

// Close releases the underlying client.
func (s *AtsScorer) Close() error {
	return s.client.Close()
}

// decodeExternalScore parses and validates a scoring response body.
func decodeExternalScore(responseText string) (*types.ExternalScore, error) {
	responseText = CleanJSONBlock(responseText)

	if err := schemas.ValidateExternalScore(responseText); err != nil {
		return nil, &ResponseError{Message: "schema validation", Cause: err}
	}

	var score types.ExternalScore
	if err := json.Unmarshal([]byte(responseText), &score); err != nil {
		return nil, &ResponseError{Message: "json decode", Cause: err}
	}

	if err := score.Validate(); err != nil {
		return nil, &ResponseError{Message: "field validation", Cause: err}
	}

	return &score, nil
}

// FormatResume renders the parsed resume as the plain-text block the scoring
// prompt embeds. Empty fields are omitted to keep the prompt small.
func FormatResume(parsed *types.ParsedResume) string {
	var sb strings.Builder

	if !parsed.Contact.Empty() {
		sb.WriteString("CONTACT:\n")
		if parsed.Contact.Email != "" {
			sb.WriteString("Email: " + parsed.Contact.Email + "\n")
		}
		if parsed.Contact.Phone != "" {
			sb.WriteString("Phone: " + parsed.Contact.Phone + "\n")
		}
		if parsed.Contact.LinkedIn != "" {
			sb.WriteString("LinkedIn: " + parsed.Contact.LinkedIn + "\n")
		}
		if parsed.Contact.GitHub != "" {
			sb.WriteString("GitHub: " + parsed.Contact.GitHub + "\n")
		}
		sb.WriteString("\n")
	}

	if parsed.Summary != "" {
		sb.WriteString("SUMMARY:\n" + parsed.Summary + "\n\n")
	}

	if len(parsed.Skills) > 0 {
		sb.WriteString("SKILLS:\n" + strings.Join(parsed.Skills, ", ") + "\n\n")
	}

	if len(parsed.Experience) > 0 {
		sb.WriteString("EXPERIENCE:\n")
		for _, exp := range parsed.Experience {
			sb.WriteString("- " + exp.Title)
			if exp.Period != "" {
				sb.WriteString(" (" + exp.Period + ")")
			}
			sb.WriteString("\n")
			if len(exp.Description) > 0 {
				sb.WriteString("  " + strings.Join(exp.Description, " ") + "\n")
			}
		}
		sb.WriteString("\n")
	}

	if len(parsed.Education) > 0 {
		sb.WriteString("EDUCATION:\n")
		for _, edu := range parsed.Education {
			sb.WriteString("- " + edu + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
