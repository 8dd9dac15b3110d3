package watcher

import "context"

type Option func(*Options)

type Options struct {
	Workers   int
	QueueSize int
	Context   context.Context
}

func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

func WithQueueSize(n int) Option {
	return func(o *Options) {
		o.QueueSize = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Workers:   2,
		QueueSize: 64,
		Context:   context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
