package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/observability"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse and score every resume in a directory",
	Long:  "Parse and score every supported resume file in a directory concurrently, writing one JSON report per input file plus a summary to stdout.",
	RunE:  runBatch,
}

var (
	batchInputDir    string
	batchOutputDir   string
	batchConfigFile  string
	batchAPIKey      string
	batchUseAI       bool
	batchConcurrency int
	batchLogLevel    string
)

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "dir", "d", "", "Directory containing resume files (required)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Directory for JSON reports (required)")
	batchCmd.Flags().StringVar(&batchConfigFile, "config", "", "Path to a JSON config file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().BoolVar(&batchUseAI, "ai", false, "Score with the AI scorer, falling back to deterministic")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of resumes processed in parallel")
	batchCmd.Flags().StringVar(&batchLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	_ = batchCmd.MarkFlagRequired("dir")
	_ = batchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(batchConfigFile, batchAPIKey)
	if err != nil {
		return err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = batchLogLevel
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	files, err := collectResumeFiles(batchInputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported resume files found in %s", batchInputDir)
	}

	if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := context.Background()
	pipe, err := newPipeline(ctx, cfg, batchUseAI, logger)
	if err != nil {
		return err
	}
	defer pipe.close()

	if batchConcurrency < 1 {
		batchConcurrency = 1
	}

	type result struct {
		file  string
		score int
		err   error
	}
	results := make([]result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	var mu sync.Mutex

	for i, path := range files {
		g.Go(func() error {
			rep, err := pipe.processFile(gctx, path, "")
			if err != nil {
				// One bad file does not abort the batch
				mu.Lock()
				results[i] = result{file: filepath.Base(path), err: err}
				mu.Unlock()
				return nil
			}

			outPath := filepath.Join(batchOutputDir, reportName(path))
			jsonBytes, err := json.MarshalIndent(rep, "", "  ")
			if err == nil {
				err = os.WriteFile(outPath, jsonBytes, 0644)
			}

			mu.Lock()
			results[i] = result{file: filepath.Base(path), score: rep.Score.AtsScore, err: err}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failures := 0
	for _, r := range results {
		if r.err != nil {
			failures++
			fmt.Printf("%-40s ERROR: %v\n", r.file, r.err)
			continue
		}
		fmt.Printf("%-40s score %3d\n", r.file, r.score)
	}
	fmt.Printf("\nProcessed %d files (%d failed), reports in %s\n", len(files), failures, batchOutputDir)

	return nil
}

// collectResumeFiles lists the directory's supported files, sorted by name
// for a stable processing order.
func collectResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if extraction.TypeForFile(entry.Name()) == "" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// reportName maps resume.pdf to resume.json.
func reportName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
