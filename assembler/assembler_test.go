package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/w-h-a/recommender/retriever"
)

func results() []retriever.Result {
	return []retriever.Result{
		{
			Document: retriever.Document{
				Content:  "Amazing phone with great camera quality and battery life.",
				Metadata: map[string]string{"product_name": "iPhone 13 Pro Max"},
			},
			Score: 0.92,
		},
		{
			Document: retriever.Document{
				Content:  "Battery drains fast but the screen is gorgeous.",
				Metadata: map[string]string{"product_name": "Galaxy S21"},
			},
			Score: 0.81,
		},
		{
			Document: retriever.Document{
				Content: "Decent budget phone for the price.",
			},
			Score: 0.55,
		},
	}
}

func TestAssembleLabelsAndOrder(t *testing.T) {
	block := New().Assemble(results())

	expected := "Product: iPhone 13 Pro Max\n" +
		"Amazing phone with great camera quality and battery life.\n\n" +
		"Product: Galaxy S21\n" +
		"Battery drains fast but the screen is gorgeous.\n\n" +
		"Decent budget phone for the price."

	assert.Equal(t, expected, block)
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := New()

	first := a.Assemble(results())
	second := a.Assemble(results())

	assert.Equal(t, first, second)
}

func TestAssembleEmptyResults(t *testing.T) {
	assert.Equal(t, "", New().Assemble(nil))
}

func TestAssembleDropsWholeDocumentsFromTheBottom(t *testing.T) {
	block := New(WithMaxDocuments(2)).Assemble(results())

	assert.Contains(t, block, "iPhone 13 Pro Max")
	assert.Contains(t, block, "Galaxy S21")
	assert.NotContains(t, block, "Decent budget phone")
	// kept documents are intact, never split
	assert.Contains(t, block, "Battery drains fast but the screen is gorgeous.")
}
