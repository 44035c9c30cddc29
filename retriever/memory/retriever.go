package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/w-h-a/recommender/embedder"
	"github.com/w-h-a/recommender/retriever"
)

// memoryIndex is a brute-force cosine similarity index for development and
// tests. Documents live in process memory only.
type memoryIndex struct {
	options retriever.Options
	embedder.Embedder
	docs    []retriever.Document
	vectors [][]float32
	mtx     sync.RWMutex
}

func (m *memoryIndex) Add(ctx context.Context, docs []retriever.Document) error {
	for _, doc := range docs {
		vec, err := m.Embed(ctx, doc.Content)
		if err != nil {
			return err
		}

		m.mtx.Lock()
		m.docs = append(m.docs, doc)
		m.vectors = append(m.vectors, vec)
		m.mtx.Unlock()
	}

	return nil
}

func (m *memoryIndex) Retrieve(ctx context.Context, query string) ([]retriever.Result, error) {
	vec, err := m.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	m.mtx.RLock()
	defer m.mtx.RUnlock()

	scores := make([]float64, len(m.vectors))
	for i := range m.vectors {
		scores[i] = cosine(m.vectors[i], vec)
	}

	idxs := make([]int, len(scores))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return scores[idxs[a]] > scores[idxs[b]]
	})

	k := m.options.TopK
	if k > len(idxs) {
		k = len(idxs)
	}

	results := make([]retriever.Result, 0, k)
	for i := 0; i < k; i++ {
		j := idxs[i]
		results = append(results, retriever.Result{
			Document: m.docs[j],
			Score:    scores[j],
		})
	}

	return results, nil
}

func cosine(a []float32, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func NewIndex(e embedder.Embedder, opts ...retriever.Option) retriever.Index {
	options := retriever.NewOptions(opts...)

	if e == nil {
		panic("embedder is required")
	}

	return &memoryIndex{
		options:  options,
		Embedder: e,
		docs:     []retriever.Document{},
		vectors:  [][]float32{},
		mtx:      sync.RWMutex{},
	}
}
