package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertBuildsDocumentsWithMetadata(t *testing.T) {
	path := writeCSV(t, "product_title,rating,review\n"+
		"iPhone 13 Pro Max,5,Amazing phone with great camera quality and battery life.\n")

	docs, err := NewConverter(path).Convert()

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Amazing phone with great camera quality and battery life.", docs[0].Content)
	assert.Equal(t, "iPhone 13 Pro Max", docs[0].Metadata["product_name"])
	assert.Equal(t, "flipkart_reviews", docs[0].Metadata["source"])
}

func TestConvertFiltersShortAndBlankReviews(t *testing.T) {
	path := writeCSV(t, "product_title,review\n"+
		"Phone A,short\n"+
		"Phone B,\n"+
		",A perfectly valid review that is long enough.\n"+
		"Phone C,   \n"+
		"Phone D,This review clears the minimum length filter.\n")

	docs, err := NewConverter(path).Convert()

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Phone D", docs[0].Metadata["product_name"])
}

func TestConvertTrimsWhitespace(t *testing.T) {
	path := writeCSV(t, "product_title,review\n"+
		"  Galaxy S21  ,  The screen is gorgeous and performance is snappy.  \n")

	docs, err := NewConverter(path).Convert()

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Galaxy S21", docs[0].Metadata["product_name"])
	assert.Equal(t, "The screen is gorgeous and performance is snappy.", docs[0].Content)
}

func TestConvertRejectsMissingColumns(t *testing.T) {
	path := writeCSV(t, "title,text\nPhone A,whatever\n")

	_, err := NewConverter(path).Convert()

	assert.Error(t, err)
}

func TestConvertMissingFile(t *testing.T) {
	_, err := NewConverter(filepath.Join(t.TempDir(), "missing.csv")).Convert()

	assert.Error(t, err)
}
