package retriever

import "context"

// Document is a unit of retrievable content. Metadata carries at least the
// product name and a provenance tag. Read-only at query time.
type Document struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// Result pairs a document with its relevance score.
type Result struct {
	Document Document
	Score    float64
}

// Index is a fixed-configuration similarity index. Retrieve returns at most
// the configured top K documents in descending relevance order, with no score
// thresholding.
type Index interface {
	Add(ctx context.Context, docs []Document) error
	Retrieve(ctx context.Context, query string) ([]Result, error)
}
