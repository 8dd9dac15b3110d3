package generator

import "context"

type Option func(*Options)

type Options struct {
	ApiKey      string
	BaseURL     string
	Model       string
	ReasonModel string
	MaxTokens   int
	Temperature float32
	Context     context.Context
}

func WithApiKey(apiKey string) Option {
	return func(o *Options) {
		o.ApiKey = apiKey
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		o.BaseURL = baseURL
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithReasonModel(model string) Option {
	return func(o *Options) {
		o.ReasonModel = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithTemperature(t float32) Option {
	return func(o *Options) {
		o.Temperature = t
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		MaxTokens:   4096,
		Temperature: 0.3,
		Context:     context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type ChatOption func(*ChatOptions)

type ChatOptions struct {
	StructuredOutput bool
	Context          context.Context
}

func WithStructuredOutput() ChatOption {
	return func(o *ChatOptions) {
		o.StructuredOutput = true
	}
}

func NewChatOptions(opts ...ChatOption) ChatOptions {
	options := ChatOptions{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
