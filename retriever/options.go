package retriever

import "context"

const (
	// DefaultTopK keeps latency and context size predictable.
	DefaultTopK = 5
)

type Option func(*Options)

type Options struct {
	Location string
	Table    string
	TopK     int
	Context  context.Context
}

func WithLocation(location string) Option {
	return func(o *Options) {
		o.Location = location
	}
}

func WithTable(table string) Option {
	return func(o *Options) {
		o.Table = table
	}
}

func WithTopK(k int) Option {
	return func(o *Options) {
		o.TopK = k
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Table:   "reviews",
		TopK:    DefaultTopK,
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.TopK <= 0 {
		options.TopK = DefaultTopK
	}
	return options
}
