// Package llm generates optional plain-language summaries of extracted
// policy records. The LLM never participates in extraction or validation;
// it only narrates a record that already exists, and strict-facts mode
// rejects any summary citing an amount the record does not contain.
package llm

import (
	"context"
	"fmt"
	"sort"

	"github.com/jgreyling/polsched/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary of the extracted record
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for summarization
type SummarizeRequest struct {
	// Record is the extracted policy record to summarize
	Record model.PolicyRecord

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// StrictFacts rejects summaries citing amounts absent from the record
	StrictFacts bool

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerSecond throttles API calls during batch runs
	RequestsPerSecond float64
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "", // Disabled by default
		Model:             "",
		Timeout:           30,
		StrictFacts:       true,
		MaxTokens:         1000,
		RequestsPerSecond: 1,
	}
}

// BuildPrompt constructs the default summarization prompt. Every figure the
// model may mention is listed explicitly; strict-facts mode verifies the
// response against the same record afterwards.
func BuildPrompt(record model.PolicyRecord) string {
	prompt := `You are summarizing an insurance policy schedule that has already been extracted into structured data.

CRITICAL RULES:
1. You MUST ONLY state amounts, dates and names that appear in the data below.
2. DO NOT infer, estimate or round any figure.
3. If a field is missing, say it was not found - never guess.
4. Describe what the schedule covers, not whether the cover is adequate.

Extracted record:
`

	prompt += fmt.Sprintf("- Policyholder: %s\n", stringOr(record.Policyholder.Name, "(not found)"))
	prompt += fmt.Sprintf("- Insurer: %s\n", stringOr(record.PolicyDetails.InsurerName, "(not found)"))
	prompt += fmt.Sprintf("- Policy number: %s\n", stringOr(record.PolicyDetails.PolicyNumber, "(not found)"))
	if record.PremiumSummary.TotalPremium != nil {
		prompt += fmt.Sprintf("- Total premium: R %.2f %s\n", *record.PremiumSummary.TotalPremium, record.PremiumSummary.PremiumFrequency)
	}

	prompt += fmt.Sprintf("- Sections (%d):\n", len(record.Sections))
	for _, section := range record.Sections {
		line := fmt.Sprintf("  - %s: %d items", section.SectionName, len(section.Items))
		if section.TotalSectionPremium != nil {
			line += fmt.Sprintf(", premium R %.2f", *section.TotalSectionPremium)
		}
		prompt += line + "\n"
	}
	if record.MotorSection != nil {
		prompt += fmt.Sprintf("- Specified vehicles: %d\n", len(record.MotorSection.Vehicles))
	}
	prompt += fmt.Sprintf("- Risk addresses: %d\n", len(record.RiskAddresses))

	prompt += "\nProvide a 3-4 sentence summary of what this policy covers."

	return prompt
}

// RecordAmounts collects every monetary amount present in a record. Used by
// strict-facts verification: an amount in the summary that is not in this
// set is a fabrication.
func RecordAmounts(record model.PolicyRecord) map[float64]struct{} {
	amounts := map[float64]struct{}{}
	add := func(v *float64) {
		if v != nil {
			amounts[*v] = struct{}{}
		}
	}

	s := record.PremiumSummary
	add(s.Subtotal)
	add(s.SasriaTotal)
	add(s.BrokerFee)
	add(s.TotalPremium)
	add(s.BrokerCommission.TotalAmount)
	for _, row := range s.SectionPremiums {
		add(row.PremiumAmount)
	}

	for _, section := range record.Sections {
		add(section.TotalSectionPremium)
		for _, item := range section.Items {
			add(item.SumInsured)
			add(item.Premium)
		}
		for _, peril := range section.AdditionalPerils {
			add(peril.LimitOfIndemnity)
		}
	}

	if record.MotorSection != nil {
		for _, v := range record.MotorSection.Vehicles {
			add(v.SumInsured)
			add(v.Premium)
			add(v.SasriaPremium)
			for _, extra := range v.Extras {
				add(extra.Value)
			}
		}
	}

	for _, entries := range record.FirstAmountsPayable {
		for _, entry := range entries {
			add(entry.MinimumAmount)
			add(entry.MaximumAmount)
		}
	}

	return amounts
}

// VerifyFacts checks every rand amount cited in the summary against the
// record. Returns the first fabricated amount found.
func VerifyFacts(summary string, record model.PolicyRecord) error {
	known := RecordAmounts(record)

	cited := ExtractAmounts(summary)
	sort.Float64s(cited)
	for _, amount := range cited {
		if _, ok := known[amount]; !ok {
			return fmt.Errorf("fact check failed: summary cites R %.2f which is not in the record", amount)
		}
	}
	return nil
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
