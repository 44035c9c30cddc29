package http

import (
	"context"
	"net/http"
	"time"
)

type Option func(*Options)

type Options struct {
	Address           string
	DefaultSessionKey string
	RequestTimeout    time.Duration
	Context           context.Context
}

func WithAddress(address string) Option {
	return func(o *Options) {
		o.Address = address
	}
}

// WithDefaultSessionKey sets the session used when a request carries no
// session identifier. The reference deployment shares one conversation.
func WithDefaultSessionKey(key string) Option {
	return func(o *Options) {
		o.DefaultSessionKey = key
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.RequestTimeout = d
	}
}

type middlewareKey struct{}

func WithMiddleware(ms ...func(h http.Handler) http.Handler) Option {
	return func(o *Options) {
		o.Context = context.WithValue(o.Context, middlewareKey{}, ms)
	}
}

func MiddlewareFrom(ctx context.Context) ([]func(h http.Handler) http.Handler, bool) {
	ms, ok := ctx.Value(middlewareKey{}).([]func(h http.Handler) http.Handler)
	return ms, ok
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Address:           ":5000",
		DefaultSessionKey: "product-assistant",
		RequestTimeout:    60 * time.Second,
		Context:           context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
