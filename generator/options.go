package generator

import "context"

const (
	// DefaultTemperature balances answer diversity with factual grounding.
	DefaultTemperature float32 = 0.5
)

type Option func(*Options)

type Options struct {
	ApiKey      string
	Model       string
	BaseURL     string
	Temperature float32
	Context     context.Context
}

func WithApiKey(apiKey string) Option {
	return func(o *Options) {
		o.ApiKey = apiKey
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		o.BaseURL = baseURL
	}
}

func WithTemperature(temperature float32) Option {
	return func(o *Options) {
		o.Temperature = temperature
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Temperature: DefaultTemperature,
		Context:     context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
