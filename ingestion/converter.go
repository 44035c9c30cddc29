package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/w-h-a/recommender/retriever"
)

const (
	// reviews at or below this length carry too little signal to index
	minReviewLength = 10

	sourceTag = "flipkart_reviews"
)

// Converter turns a CSV of product reviews into retrievable documents. The
// file must carry product_title and review columns; other columns are
// ignored.
type Converter struct {
	filePath string
}

func (c *Converter) Convert() ([]retriever.Document, error) {
	f, err := os.Open(c.filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	titleIdx, reviewIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "product_title":
			titleIdx = i
		case "review":
			reviewIdx = i
		}
	}

	if titleIdx < 0 || reviewIdx < 0 {
		return nil, fmt.Errorf("csv is missing required columns product_title and review")
	}

	var docs []retriever.Document

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if titleIdx >= len(record) || reviewIdx >= len(record) {
			continue
		}

		title := strings.TrimSpace(record[titleIdx])
		review := strings.TrimSpace(record[reviewIdx])

		if len(title) == 0 || len(review) == 0 {
			continue
		}

		if len(review) <= minReviewLength {
			continue
		}

		docs = append(docs, retriever.Document{
			Content: review,
			Metadata: map[string]string{
				"product_name": title,
				"source":       sourceTag,
			},
		})
	}

	return docs, nil
}

func NewConverter(filePath string) *Converter {
	return &Converter{
		filePath: filePath,
	}
}
