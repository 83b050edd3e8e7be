// Package pipeline wires loading, extraction, validation and optional
// summarization into a single extract run per input document.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jgreyling/polsched/internal/cache"
	"github.com/jgreyling/polsched/internal/extract"
	"github.com/jgreyling/polsched/internal/ingest"
	"github.com/jgreyling/polsched/internal/llm"
	"github.com/jgreyling/polsched/internal/model"
	"github.com/jgreyling/polsched/internal/validate"
)

// Pipeline orchestrates the complete extraction process
type Pipeline struct {
	loader     *ingest.Loader
	validator  *validate.Validator
	renderer   *Renderer
	summarizer *llm.Summarizer // Optional LLM summarizer (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var textCache cache.Cache
	if cfg.Cache.Enabled {
		textCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	// Create LLM summarizer if configured
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		llmConfig := llm.ConfigFromModel(cfg.LLM)
		s, err := llm.NewSummarizer(llmConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		loader:     ingest.NewLoader(textCache, cfg.Cache.DiskTTL, cfg.Output.Verbose),
		validator:  validate.NewValidator(),
		renderer:   NewRenderer(cfg.Output.Pretty),
		summarizer: summarizer,
		config:     cfg,
	}
}

// Result contains the complete outcome of extracting one document
type Result struct {
	Record     *model.PolicyRecord
	SourcePath string
	Validation validate.Result
	Summary    *llm.Summary
}

// ExtractFile extracts a single schedule document into a policy record
func (p *Pipeline) ExtractFile(ctx context.Context, path string) (*Result, error) {
	// 1. Load and normalize document text
	text, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// 2. Extract the record
	record := extract.New(text, filepath.Base(path)).ExtractAll()

	// 3. Structural validation
	validation := p.validator.Validate(record)

	result := &Result{
		Record:     record,
		SourcePath: path,
		Validation: validation,
	}

	// 4. Generate LLM summary if enabled (AFTER extraction, never affects the record)
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *record)
		if err != nil {
			// Don't fail the entire extraction, just warn
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else {
			result.Summary = summary
		}
	}

	return result, nil
}

// RenderResult writes the record JSON and, when configured, the human summary
func (p *Pipeline) RenderResult(result *Result, jsonPath string, verbose bool) error {
	if err := p.renderer.RenderJSON(result.Record, jsonPath); err != nil {
		return fmt.Errorf("render JSON: %w", err)
	}
	if verbose && jsonPath != "" && jsonPath != "-" {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
	}

	if result.Summary != nil {
		fmt.Fprintf(os.Stderr, "\n=== LLM SUMMARY (%s/%s) ===\n%s\n", result.Summary.Provider, result.Summary.Model, result.Summary.Text)
	}

	if p.config.Output.Summary {
		p.renderer.WriteSummary(os.Stderr, result)
	}

	return nil
}
