package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jgreyling/polsched/internal/model"
	"github.com/sashabaranov/go-openai"
)

func mockOpenAIServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Unexpected Authorization header %s", r.Header.Get("Authorization"))
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: content,
					},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{TotalTokens: 100},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func premiumRecord(total float64) model.PolicyRecord {
	record := model.NewPolicyRecord("schedule.pdf")
	record.PremiumSummary.TotalPremium = &total
	return *record
}

func TestOpenAIProvider_Summarize_Success(t *testing.T) {
	server := mockOpenAIServer(t, "The policy costs R 4 663.22 per month.")
	defer server.Close()

	config := Config{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Model:       "gpt-4o-mini",
		Timeout:     5,
		StrictFacts: true,
	}
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Summarize(context.Background(), SummarizeRequest{
		Record: premiumRecord(4663.22),
	})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if resp.Summary != "The policy costs R 4 663.22 per month." {
		t.Errorf("Unexpected summary: %s", resp.Summary)
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("Unexpected model: %s", resp.Model)
	}
	if resp.TokensUsed != 100 {
		t.Errorf("Unexpected token count: %d", resp.TokensUsed)
	}
}

func TestOpenAIProvider_Summarize_StrictFactsViolation(t *testing.T) {
	// The mock response cites an amount that does not exist in the record
	server := mockOpenAIServer(t, "The policy costs R 9 999.99 per month.")
	defer server.Close()

	config := Config{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Timeout:     5,
		StrictFacts: true,
	}
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Summarize(context.Background(), SummarizeRequest{
		Record: premiumRecord(4663.22),
	})
	if err == nil {
		t.Fatal("Expected strict-facts error")
	}
	if !strings.Contains(err.Error(), "fact check failed") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestOpenAIProvider_Summarize_StrictFactsDisabled(t *testing.T) {
	server := mockOpenAIServer(t, "The policy costs R 9 999.99 per month.")
	defer server.Close()

	config := Config{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Timeout:     5,
		StrictFacts: false,
	}
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.Summarize(context.Background(), SummarizeRequest{
		Record: premiumRecord(4663.22),
	}); err != nil {
		t.Fatalf("Expected fabricated amount to pass with strict facts off, got %v", err)
	}
}

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("Expected error for missing API key")
	}
}
