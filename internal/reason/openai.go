package reason

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/repocard/repocard/internal/signals"
)

// DefaultOpenAIModel is the cost-effective default for card generation.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIEngine generates insights through the OpenAI chat completion API.
type OpenAIEngine struct {
	client *openai.Client
	model  string
	name   string
}

// NewOpenAIEngine creates an engine for the hosted OpenAI service.
func NewOpenAIEngine(apiKey, model string) *OpenAIEngine {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIEngine{
		client: openai.NewClient(apiKey),
		model:  model,
		name:   "openai",
	}
}

// NewCompatibleEngine creates an engine for any OpenAI-compatible endpoint,
// such as a locally hosted Ollama server. The API key may be empty for
// servers that do not authenticate.
func NewCompatibleEngine(name, baseURL, apiKey, model string) *OpenAIEngine {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	return &OpenAIEngine{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		name:   name,
	}
}

func (e *OpenAIEngine) Name() string { return e.name }

func (e *OpenAIEngine) Reason(ctx context.Context, sig signals.Signals, content string) (*Insights, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(sig, content)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("%s chat completion: %w", e.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s returned no choices", e.name)
	}
	return parseInsights(resp.Choices[0].Message.Content)
}
