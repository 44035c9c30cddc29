package ingestion

import (
	"context"
	"errors"
	"log/slog"

	"github.com/w-h-a/recommender/retriever"
)

// smaller batches keep the embedding endpoint within its timeouts
const defaultBatchSize = 50

type Option func(*Ingestor)

func WithBatchSize(n int) Option {
	return func(i *Ingestor) {
		if n > 0 {
			i.batchSize = n
		}
	}
}

// Ingestor loads converted documents into a similarity index in batches.
type Ingestor struct {
	index     retriever.Index
	batchSize int
}

func (i *Ingestor) Ingest(ctx context.Context, docs []retriever.Document) error {
	if len(docs) == 0 {
		return errors.New("no documents to ingest")
	}

	total := len(docs)
	batches := (total + i.batchSize - 1) / i.batchSize

	for start := 0; start < total; start += i.batchSize {
		end := start + i.batchSize
		if end > total {
			end = total
		}

		batch := docs[start:end]

		slog.InfoContext(ctx, "ingesting batch",
			"batch", start/i.batchSize+1,
			"batches", batches,
			"documents", len(batch),
		)

		if err := i.index.Add(ctx, batch); err != nil {
			return err
		}
	}

	slog.InfoContext(ctx, "ingestion complete", "documents", total)

	return nil
}

// IngestFile converts a review CSV and loads it into the index.
func (i *Ingestor) IngestFile(ctx context.Context, filePath string) error {
	docs, err := NewConverter(filePath).Convert()
	if err != nil {
		return err
	}
	return i.Ingest(ctx, docs)
}

func NewIngestor(index retriever.Index, opts ...Option) *Ingestor {
	if index == nil {
		panic("index is required")
	}

	i := &Ingestor{
		index:     index,
		batchSize: defaultBatchSize,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}
