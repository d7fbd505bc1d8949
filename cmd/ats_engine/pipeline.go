package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/llm"
	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/types"
)

// report is the JSON document both CLI commands emit per resume.
type report struct {
	ID          string              `json:"id"`
	File        string              `json:"file"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Resume      *types.ParsedResume `json:"resume"`
	Score       *types.ScoreReport  `json:"score"`
}

// pipeline bundles the parser and scoring engine a command runs files
// through.
type pipeline struct {
	parser *parsing.Parser
	engine *scoring.Engine
	scorer *llm.AtsScorer // nil when the AI path is disabled
	logger *zap.Logger
}

// newPipeline assembles the pipeline from merged configuration. The AI
// scorer is attached only when requested and an API key resolves; otherwise
// every score takes the deterministic path.
func newPipeline(ctx context.Context, cfg *config.Config, useAI bool, logger *zap.Logger) (*pipeline, error) {
	p := &pipeline{
		parser: parsing.New(logger),
		logger: logger,
	}

	var external scoring.ExternalScorer
	if useAI {
		apiKey := cfg.ResolveAPIKey()
		if apiKey == "" {
			logger.Warn("AI scoring requested but no API key configured, using deterministic scorer")
		} else {
			llmCfg := llm.DefaultConfig()
			if cfg.Model != "" {
				llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
			}
			if cfg.TimeoutSeconds > 0 {
				llmCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
			}
			scorer, err := llm.NewAtsScorer(ctx, llmCfg, apiKey, logger)
			if err != nil {
				return nil, fmt.Errorf("failed to create AI scorer: %w", err)
			}
			p.scorer = scorer
			external = scorer
		}
	}
	p.engine = scoring.NewEngine(external, logger)

	return p, nil
}

// close releases the AI client, if any.
func (p *pipeline) close() {
	if p.scorer != nil {
		_ = p.scorer.Close()
	}
}

// processFile runs one resume file through extraction, parsing and scoring.
// Extraction failure does not fail the call: the parse proceeds on the
// placeholder text and yields an empty resume with a zero score.
func (p *pipeline) processFile(ctx context.Context, path, mediaType string) (*report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if mediaType == "" {
		mediaType = extraction.TypeForFile(path)
	}
	if mediaType == "" {
		return nil, fmt.Errorf("cannot determine media type for %s (use --type)", path)
	}

	text := extraction.TextOrPlaceholder(data, mediaType, filepath.Base(path), p.logger)
	parsed := p.parser.Parse(text)
	score := p.engine.Score(ctx, parsed)

	return &report{
		ID:          uuid.New().String(),
		File:        filepath.Base(path),
		GeneratedAt: time.Now().UTC(),
		Resume:      parsed,
		Score:       score,
	}, nil
}

// loadConfig reads and validates the optional config file, then overlays
// command-line values.
func loadConfig(path string, flagAPIKey string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
