package http

import "context"

type Option func(*Options)

type Options struct {
	Address  string
	InboxDir string
	Context  context.Context
}

func WithAddress(address string) Option {
	return func(o *Options) {
		o.Address = address
	}
}

func WithInboxDir(dir string) Option {
	return func(o *Options) {
		o.InboxDir = dir
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Address:  ":8000",
		InboxDir: "workspace/inbox",
		Context:  context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
