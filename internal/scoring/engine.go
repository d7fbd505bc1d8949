package scoring

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/types"
)

// ExternalScorer is the strategy seam for an AI-assisted scoring service.
// TryScore may fail or time out; the engine treats any error as a signal to
// fall back, never as a pipeline failure.
type ExternalScorer interface {
	TryScore(ctx context.Context, parsed *types.ParsedResume) (*types.ExternalScore, error)
}

// Engine produces a ScoreReport for a parsed resume, preferring the external
// scorer when one is configured and its response is usable, and always
// having a non-failing path through the deterministic scorer.
type Engine struct {
	external ExternalScorer
	logger   *zap.Logger
}

// NewEngine creates a scoring engine. external may be nil, in which case
// every score takes the deterministic path.
func NewEngine(external ExternalScorer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{external: external, logger: logger}
}

// Score tries the external scorer and falls back to the deterministic
// calculation on any failure. The returned report never carries an error;
// FallbackUsed records which path produced it.
func (e *Engine) Score(ctx context.Context, parsed *types.ParsedResume) *types.ScoreReport {
	if e.external != nil {
		ext, err := e.external.TryScore(ctx, parsed)
		switch {
		case err != nil:
			e.logger.Warn("external scorer failed, falling back", zap.Error(err))
		case ext == nil:
			e.logger.Warn("external scorer returned no result, falling back")
		case ext.AtsScore < 0 || ext.AtsScore > 100:
			e.logger.Warn("external scorer returned out-of-range score, falling back",
				zap.Int("atsScore", ext.AtsScore))
		default:
			e.logger.Info("using external ATS score", zap.Int("atsScore", ext.AtsScore))
			return &types.ScoreReport{
				AtsScore:       ext.AtsScore,
				Reasoning:      ext.Reasoning,
				Strengths:      ext.Strengths,
				Improvements:   ext.Improvements,
				KeywordMatches: ext.KeywordMatches,
				Source:         types.SourceAI,
				FallbackUsed:   false,
			}
		}
	}

	det := Score(parsed)
	e.logger.Info("using deterministic ATS score",
		zap.Int("atsScore", det.AtsScore),
		zap.Int("skills", det.ScoreBreakdown.Skills),
		zap.Int("experience", det.ScoreBreakdown.Experience),
		zap.Int("education", det.ScoreBreakdown.Education),
		zap.Int("keywords", det.ScoreBreakdown.Keywords))

	breakdown := det.ScoreBreakdown
	return &types.ScoreReport{
		AtsScore:       det.AtsScore,
		ScoreBreakdown: &breakdown,
		KeywordsFound:  det.KeywordsFound,
		Reasoning: fmt.Sprintf(
			"Calculated using hybrid method (Skills: %d, Experience: %d, Education: %d, Keywords: %d)",
			breakdown.Skills, breakdown.Experience, breakdown.Education, breakdown.Keywords),
		KeywordMatches: det.KeywordsFound,
		Source:         types.SourceDeterministic,
		FallbackUsed:   true,
	}
}
