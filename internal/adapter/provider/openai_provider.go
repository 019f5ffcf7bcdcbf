package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quill/internal/domain"

	"github.com/tmc/langchaingo/llms"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
)

const openAIProviderName = "openai"

// OpenAIProvider implements domain.QuestionProvider against the OpenAI
// chat completions API through LangchainGo. It serves as the fallback
// provider; the orchestrator consults it only after the primary has
// conclusively failed.
type OpenAIProvider struct {
	llm       llms.Model
	modelName string
}

// NewOpenAIProvider creates the fallback generation provider.
func NewOpenAIProvider(apiKey, modelName string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("openai model name cannot be empty")
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIProvider{llm: llm, modelName: modelName}, nil
}

// Name implements domain.QuestionProvider.
func (p *OpenAIProvider) Name() string {
	return openAIProviderName
}

// Generate implements domain.QuestionProvider.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt,
		llms.WithTemperature(0.2),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", normalizeProviderError(p.Name(), err)
	}
	if strings.TrimSpace(completion) == "" {
		return "", domain.NewProviderError(p.Name(), domain.ProviderMalformed, errors.New("empty completion"))
	}
	return completion, nil
}

var _ domain.QuestionProvider = (*OpenAIProvider)(nil)
