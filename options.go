package procurement

import (
	"context"

	"github.com/w-h-a/procurement/generator"
	"github.com/w-h-a/procurement/memorymanager"
	"github.com/w-h-a/procurement/reader"
)

type Option func(*Options)

type Options struct {
	Reader    reader.Reader
	Generator generator.Generator
	Memory    memorymanager.MemoryManager
	Context   context.Context
}

func WithReader(r reader.Reader) Option {
	return func(o *Options) {
		o.Reader = r
	}
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

func NewOptions(opts ...Option) Options {
	options := Options{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
