package anthropic

import (
	"context"
	"errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/w-h-a/procurement/generator"
)

const structuredInstruction = "Respond with a single valid JSON object and nothing else."

type anthropicGenerator struct {
	options generator.Options
	client  *anthropic.Client
}

func (g *anthropicGenerator) Chat(ctx context.Context, messages []generator.Message, opts ...generator.ChatOption) (string, error) {
	chatOptions := generator.NewChatOptions(opts...)

	maxTokens := int64(g.options.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 1024
	}

	req := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.options.Model),
		MaxTokens: maxTokens,
	}

	for _, msg := range messages {
		if msg.Role == "system" {
			req.System = append(req.System, anthropic.TextBlockParam{Text: msg.Content})
			continue
		}
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == "assistant" {
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(block))
		} else {
			req.Messages = append(req.Messages, anthropic.NewUserMessage(block))
		}
	}

	// the API has no JSON response mode, so constrain via instruction
	if chatOptions.StructuredOutput {
		req.System = append(req.System, anthropic.TextBlockParam{Text: structuredInstruction})
	}

	rsp, err := g.client.Messages.New(ctx, req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, content := range rsp.Content {
		if text, ok := content.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}

	result := b.String()
	if len(result) == 0 {
		return "", errors.New("no response from model")
	}

	return result, nil
}

func (g *anthropicGenerator) Reason(ctx context.Context, prompt string) (string, error) {
	return g.Chat(ctx, []generator.Message{{Role: "user", Content: prompt}})
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &anthropicGenerator{
		options: options,
	}

	client := anthropic.NewClient(
		anthropicopt.WithAPIKey(options.ApiKey),
	)

	g.client = &client

	return g
}
