package llm

import (
	"fmt"
	"os"
	"strings"

	"github.com/jgreyling/polsched/internal/model"
)

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		// No provider configured - return nil (LLM disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config. The API key comes
// from the environment, never from the config file.
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	apiKey := modelConfig.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return Config{
		Provider:          modelConfig.Provider,
		Model:             modelConfig.Model,
		APIKey:            apiKey,
		BaseURL:           modelConfig.BaseURL,
		Timeout:           modelConfig.TimeoutSeconds,
		StrictFacts:       modelConfig.StrictFacts,
		MaxTokens:         modelConfig.MaxTokens,
		RequestsPerSecond: modelConfig.RequestsPerSecond,
	}
}
