package openai

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"github.com/w-h-a/procurement/generator"
)

type openAIGenerator struct {
	options generator.Options
	client  *openai.Client
}

func (g *openAIGenerator) Chat(ctx context.Context, messages []generator.Message, opts ...generator.ChatOption) (string, error) {
	chatOptions := generator.NewChatOptions(opts...)

	req := openai.ChatCompletionRequest{
		Model:       g.options.Model,
		Temperature: g.options.Temperature,
		MaxTokens:   g.options.MaxTokens,
	}

	for _, msg := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	if chatOptions.StructuredOutput {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	rsp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return "", errors.New("no response from model")
	}

	return rsp.Choices[0].Message.Content, nil
}

// Reason sends the prompt to the reasoning model. Reasoning models only
// accept user/assistant roles, so the prompt goes through as a single user
// message. Any failure falls back to the chat model.
func (g *openAIGenerator) Reason(ctx context.Context, prompt string) (string, error) {
	if len(g.options.ReasonModel) == 0 {
		return g.Chat(ctx, []generator.Message{{Role: openai.ChatMessageRoleUser, Content: prompt}})
	}

	req := openai.ChatCompletionRequest{
		Model: g.options.ReasonModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	rsp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil || len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return g.Chat(ctx, []generator.Message{{Role: openai.ChatMessageRoleUser, Content: prompt}})
	}

	return rsp.Choices[0].Message.Content, nil
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &openAIGenerator{
		options: options,
	}

	config := openai.DefaultConfig(options.ApiKey)
	if len(options.BaseURL) > 0 {
		config.BaseURL = options.BaseURL
	}

	g.client = openai.NewClientWithConfig(config)

	return g
}
