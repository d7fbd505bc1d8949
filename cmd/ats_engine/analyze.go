package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse one resume file and compute its ATS score",
	Long:  "Parse a resume file (PDF, DOCX, HTML or plain text) into structured fields and compute its ATS score. Writes a JSON report to --out or stdout.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeMediaType  string
	analyzeConfigFile string
	analyzeAPIKey     string
	analyzeUseAI      bool
	analyzeVerbose    bool
	analyzeLogLevel   string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to the resume file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to the output JSON report (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeMediaType, "type", "", "Media type override (default: inferred from extension)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "ai", false, "Score with the AI scorer, falling back to deterministic")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted summaries to stderr")
	analyzeCmd.Flags().StringVar(&analyzeLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(analyzeConfigFile, analyzeAPIKey)
	if err != nil {
		return err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = analyzeLogLevel
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pipe, err := newPipeline(ctx, cfg, analyzeUseAI, logger)
	if err != nil {
		return err
	}
	defer pipe.close()

	rep, err := pipe.processFile(ctx, analyzeInputFile, analyzeMediaType)
	if err != nil {
		return err
	}

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintParsedResume(rep.Resume)
		printer.PrintScoreReport(rep.Score)
	}

	jsonBytes, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if analyzeOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
