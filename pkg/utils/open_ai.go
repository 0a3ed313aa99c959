package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"tripmigo/internal/aipipeline"
)

// OpenAITextModel implements aipipeline.TextModel on the chat completions API.
type OpenAITextModel struct {
	client *openai.Client
	model  string
}

func NewOpenAITextModel(apiKey, model string) *OpenAITextModel {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextModel{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAITextModel) Name() string { return "openai/" + o.model }

func (o *OpenAITextModel) GenerateText(ctx context.Context, prompt string, cfg aipipeline.GenerationConfig) (aipipeline.Completion, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   int(cfg.MaxOutputTokens),
	})
	if err != nil {
		return aipipeline.Completion{}, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return aipipeline.Completion{}, nil
	}

	choice := resp.Choices[0]
	return aipipeline.Completion{
		Text:      choice.Message.Content,
		Truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}
