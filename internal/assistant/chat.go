package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"salon-assistant-backend/config"
)

const chatSystemPrompt = "You are a salon booking assistant. Use retrieved salon details in your responses."

// Chatter generates a conversational reply from retrieved salon knowledge
// and the user's question.
type Chatter interface {
	Reply(ctx context.Context, retrieved, userInput string) (string, error)
}

type openAIChatter struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIChatter creates a Chatter backed by an OpenAI-compatible API.
func NewOpenAIChatter(cfg *config.AIConfig) Chatter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &openAIChatter{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.ChatModel,
		temperature: cfg.Temperature,
	}
}

func (c *openAIChatter) Reply(ctx context.Context, retrieved, userInput string) (string, error) {
	knowledge := "No specific salon details found."
	if retrieved != "" {
		knowledge = fmt.Sprintf("Here is information from the salon: %s", retrieved)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
			{Role: openai.ChatMessageRoleAssistant, Content: knowledge},
			{Role: openai.ChatMessageRoleUser, Content: userInput},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty chat completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
