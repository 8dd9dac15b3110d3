package google

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/w-h-a/procurement/generator"
	genaiopt "google.golang.org/api/option"
)

type googleGenerator struct {
	options generator.Options
	client  *genai.Client
}

func (g *googleGenerator) Chat(ctx context.Context, messages []generator.Message, opts ...generator.ChatOption) (string, error) {
	chatOptions := generator.NewChatOptions(opts...)

	model := g.client.GenerativeModel(g.options.Model)
	if chatOptions.StructuredOutput {
		model.ResponseMIMEType = "application/json"
	}

	var prompt strings.Builder
	for _, msg := range messages {
		if prompt.Len() > 0 {
			prompt.WriteString("\n")
		}
		prompt.WriteString(msg.Content)
	}

	rsp, err := model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", err
	}

	if len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil || len(rsp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from model")
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return b.String(), nil
}

func (g *googleGenerator) Reason(ctx context.Context, prompt string) (string, error) {
	return g.Chat(ctx, []generator.Message{{Role: "user", Content: prompt}})
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &googleGenerator{
		options: options,
	}

	client, err := genai.NewClient(
		context.Background(),
		genaiopt.WithAPIKey(options.ApiKey),
	)
	if err != nil {
		panic(err)
	}

	g.client = client

	return g
}
