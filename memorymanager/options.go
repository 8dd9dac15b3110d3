package memorymanager

import (
	"context"

	"github.com/w-h-a/procurement/memorymanager/providers/embedder"
	"github.com/w-h-a/procurement/memorymanager/providers/indexer"
	"github.com/w-h-a/procurement/memorymanager/providers/storer"
)

type Option func(*Options)

type Options struct {
	Storer   storer.Storer
	Indexer  indexer.Indexer
	Embedder embedder.Embedder
	Context  context.Context
}

func WithStorer(storer storer.Storer) Option {
	return func(o *Options) {
		o.Storer = storer
	}
}

func WithIndexer(indexer indexer.Indexer) Option {
	return func(o *Options) {
		o.Indexer = indexer
	}
}

func WithEmbedder(embedder embedder.Embedder) Option {
	return func(o *Options) {
		o.Embedder = embedder
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

type SearchHistoryOption func(*SearchHistoryOptions)

type SearchHistoryOptions struct {
	Limit   int
	Context context.Context
}

func WithSearchHistoryLimit(limit int) SearchHistoryOption {
	return func(o *SearchHistoryOptions) {
		o.Limit = limit
	}
}

func NewSearchHistoryOptions(opts ...SearchHistoryOption) SearchHistoryOptions {
	options := SearchHistoryOptions{
		Limit:   5,
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
