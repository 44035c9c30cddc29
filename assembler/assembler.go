package assembler

import (
	"strings"

	"github.com/w-h-a/recommender/retriever"
)

const separator = "\n\n"

type Option func(*Assembler)

// WithMaxDocuments bounds the context block by dropping whole documents,
// lowest relevance first. Zero means no bound.
func WithMaxDocuments(n int) Option {
	return func(a *Assembler) {
		a.maxDocuments = n
	}
}

// Assembler turns retrieval results into a grounding context block. It is a
// pure function of its input: same results, byte-identical output.
type Assembler struct {
	maxDocuments int
}

func (a *Assembler) Assemble(results []retriever.Result) string {
	if a.maxDocuments > 0 && len(results) > a.maxDocuments {
		results = results[:a.maxDocuments]
	}

	blocks := make([]string, 0, len(results))
	for _, result := range results {
		var b strings.Builder
		if name := result.Document.Metadata["product_name"]; len(name) > 0 {
			b.WriteString("Product: ")
			b.WriteString(name)
			b.WriteString("\n")
		}
		b.WriteString(result.Document.Content)
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, separator)
}

func New(opts ...Option) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
