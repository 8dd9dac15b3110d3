package assistant

import (
	"context"

	"github.com/w-h-a/procurement/generator"
	"github.com/w-h-a/procurement/memorymanager"
)

type Option func(*Options)

type Options struct {
	Generator generator.Generator
	Memory    memorymanager.MemoryManager
	Rules     []Rule
	Window    int
	Context   context.Context
}

func WithGenerator(g generator.Generator) Option {
	return func(o *Options) {
		o.Generator = g
	}
}

func WithMemory(m memorymanager.MemoryManager) Option {
	return func(o *Options) {
		o.Memory = m
	}
}

func WithRules(rules ...Rule) Option {
	return func(o *Options) {
		o.Rules = rules
	}
}

func WithWindow(n int) Option {
	return func(o *Options) {
		o.Window = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Window:  6,
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
