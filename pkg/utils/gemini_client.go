package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripmigo/internal/aipipeline"
)

const DefaultGeminiModel = "gemini-2.0-flash-lite"

// GeminiTextModel implements aipipeline.TextModel on Google's Gemini API.
type GeminiTextModel struct {
	client *genai.Client
	model  string
}

func NewGeminiTextModel(apiKey, model string) (*GeminiTextModel, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextModel{client: client, model: model}, nil
}

func (g *GeminiTextModel) Name() string { return "gemini/" + g.model }

func (g *GeminiTextModel) GenerateText(ctx context.Context, prompt string, cfg aipipeline.GenerationConfig) (aipipeline.Completion, error) {
	// A fresh handle per call keeps the sampling settings request-local.
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(cfg.Temperature)
	m.SetTopP(cfg.TopP)
	m.SetTopK(cfg.TopK)
	m.SetMaxOutputTokens(cfg.MaxOutputTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return aipipeline.Completion{}, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		// No candidate is reported as an empty body, which the gateway does not retry.
		return aipipeline.Completion{}, nil
	}

	candidate := resp.Candidates[0]
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return aipipeline.Completion{
		Text:      sb.String(),
		Truncated: candidate.FinishReason == genai.FinishReasonMaxTokens,
	}, nil
}

func (g *GeminiTextModel) Close() error {
	return g.client.Close()
}

var ErrUnsupportedProvider = errors.New("unsupported model provider")

// NewTextModel builds the backend for provider. An empty apiKey yields a nil
// model, which makes the gateway report itself unconfigured.
func NewTextModel(provider, apiKey, model string) (aipipeline.TextModel, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, nil
	}
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextModel(apiKey, model), nil
	case "gemini", "":
		m, err := NewGeminiTextModel(apiKey, model)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}
