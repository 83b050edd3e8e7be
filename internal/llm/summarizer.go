package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/jgreyling/polsched/internal/model"
)

// Summary is the rendered result attached alongside a record. It lives next
// to the record, never inside it, so extraction output is identical whether
// or not the LLM layer is enabled.
type Summary struct {
	Provider    string `json:"provider"`
	Model       string `json:"model"`
	Text        string `json:"text"`
	TokensUsed  int    `json:"tokens_used"`
	GeneratedAt string `json:"generated_at"`
}

// Summarizer wraps a provider with rate limiting. A nil provider means the
// layer is disabled; GenerateSummary then returns nil without error.
type Summarizer struct {
	provider Provider
	limiter  *rate.Limiter
	config   Config
}

// NewSummarizer creates a summarizer from configuration. An empty provider
// name yields a disabled summarizer, not an error.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Summarizer{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// ProviderName returns the active provider's name, or "" when disabled
func (s *Summarizer) ProviderName() string {
	if !s.IsEnabled() {
		return ""
	}
	return s.provider.Name()
}

// GenerateSummary produces a summary of the record. Batch runs share one
// summarizer, so the rate limiter throttles the whole process.
func (s *Summarizer) GenerateSummary(ctx context.Context, record model.PolicyRecord) (*Summary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Record:    record,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	return &Summary{
		Provider:    s.provider.Name(),
		Model:       resp.Model,
		Text:        resp.Summary,
		TokensUsed:  resp.TokensUsed,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
