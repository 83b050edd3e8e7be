package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON      string
	showSummary  bool
	compact      bool
	noCache      bool
	extractLimit time.Duration
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a single policy schedule into structured JSON",
	Long: `Extract parses one schedule document (.pdf or plain text) and produces
a typed JSON record:
- Policyholder, policy and broker details
- Premium summary with per-section rows and commission disclosure
- Line-of-business sections with insured items and additional perils
- Specified vehicles, endorsements and first amounts payable
- Deduplicated risk addresses

Example:
  polsched extract schedule.pdf
  polsched extract schedule.pdf --json record.json --summary
  polsched extract schedule.txt --json - --compact
  polsched extract schedule.pdf --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Output flags
	extractCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: <input>.json, \"-\" for stdout)")
	extractCmd.Flags().BoolVar(&showSummary, "summary", false, "print a human-readable extraction summary")
	extractCmd.Flags().BoolVar(&compact, "compact", false, "write compact JSON instead of indented")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the PDF text cache")
	extractCmd.Flags().DurationVar(&extractLimit, "timeout", 2*time.Minute, "overall extraction timeout")

	// LLM flags
	extractCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	extractCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	extractCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), extractLimit)
	defer cancel()

	cfg := loadConfig()
	cfg.Output.Pretty = cfg.Output.Pretty && !compact
	cfg.Output.Summary = cfg.Output.Summary || showSummary
	if noCache {
		cfg.Cache.Enabled = false
	}
	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", path)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	result, err := p.ExtractFile(ctx, path)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d sections\n", len(result.Record.Sections))
		if result.Record.MotorSection != nil {
			fmt.Fprintf(os.Stderr, "✓ Extracted %d vehicles\n", len(result.Record.MotorSection.Vehicles))
		}
		if result.Summary != nil {
			fmt.Fprintf(os.Stderr, "✓ Generated LLM summary using %s/%s\n", result.Summary.Provider, result.Summary.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	jsonPath := outJSON
	if jsonPath == "" {
		jsonPath = defaultJSONPath(path)
	}
	if err := p.RenderResult(result, jsonPath, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	for _, warning := range result.Validation.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if !result.Validation.Valid {
		for _, e := range result.Validation.Errors {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e)
		}
		return fmt.Errorf("extraction produced an incomplete record (%d errors)", len(result.Validation.Errors))
	}

	return nil
}

// defaultJSONPath derives the output path from the input document name
func defaultJSONPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".json"
}

// configureLLM enables the summary layer from the shared LLM flags. Strict
// fact checking stays on; the summary may never cite amounts the record does
// not contain.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.StrictFacts = true

	switch llmProvider {
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s", llmProvider)
	}

	return nil
}
