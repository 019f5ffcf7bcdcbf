package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quill/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const geminiProviderName = "gemini"

// GeminiProvider implements domain.QuestionProvider against the Google
// generative language API through LangchainGo.
type GeminiProvider struct {
	llm       llms.Model
	modelName string
}

// NewGeminiProvider creates the primary generation provider.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{llm: llm, modelName: modelName}, nil
}

// Name implements domain.QuestionProvider.
func (p *GeminiProvider) Name() string {
	return geminiProviderName
}

// Generate implements domain.QuestionProvider.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
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

// Static assertion that GeminiProvider satisfies the provider contract.
var _ domain.QuestionProvider = (*GeminiProvider)(nil)
