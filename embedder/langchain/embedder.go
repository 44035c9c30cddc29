package langchain

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/w-h-a/recommender/embedder"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// langchainEmbedder wraps a langchaingo embedder over any OpenAI-compatible
// embeddings endpoint, e.g. a hosted inference server for BGE-style models.
type langchainEmbedder struct {
	options embedder.Options
	embeddings.Embedder
}

func (e *langchainEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedQuery(ctx, text)
}

func NewEmbedder(opts ...embedder.Option) embedder.Embedder {
	options := embedder.NewOptions(opts...)

	e := &langchainEmbedder{
		options: options,
	}

	llmOpts := []openai.Option{
		openai.WithToken(options.ApiKey),
		openai.WithModel(options.Model),
		openai.WithEmbeddingModel(options.Model),
		openai.WithHTTPClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	}

	if len(options.BaseURL) > 0 {
		llmOpts = append(llmOpts, openai.WithBaseURL(options.BaseURL))
	}

	llm, err := openai.New(llmOpts...)
	if err != nil {
		detail := "failed to initialize model for langchain embedder"
		slog.ErrorContext(options.Context, detail, "error", err)
		panic(detail)
	}

	emb, err := embeddings.NewEmbedder(llm)
	if err != nil {
		detail := "failed to initialize langchain embedder"
		slog.ErrorContext(options.Context, detail, "error", err)
		panic(detail)
	}

	e.Embedder = emb

	return e
}
