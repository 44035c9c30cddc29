package answerer

import (
	"context"
	"fmt"

	"github.com/w-h-a/recommender/generator"
	"github.com/w-h-a/recommender/history"
)

const (
	systemTemplate = `You're a helpful e-commerce assistant specializing in product recommendations.

Use the provided product reviews and context to answer user questions accurately.

Guidelines:
- Base your response on the retrieved reviews and product information
- Be concise but informative
- If asked about products not in the context, mention that you specialize in products from the reviews
- Highlight key features, pros, and cons mentioned in reviews
- Suggest alternatives when appropriate

CONTEXT:
%s

QUESTION: %s`

	defaultHistoryWindow = 8
)

type Option func(*Answerer)

// WithHistoryWindow caps how many recent turns are sent to the model. The
// stored history itself is never trimmed.
func WithHistoryWindow(n int) Option {
	return func(a *Answerer) {
		if n > 0 {
			a.historyWindow = n
		}
	}
}

// Answerer produces the grounded reply from the assembled context, the
// session history, and the literal question.
type Answerer struct {
	generator     generator.Generator
	historyWindow int
}

// Answer returns exactly the model's generated text. Collaborator failures
// propagate unmodified.
func (a *Answerer) Answer(ctx context.Context, contextBlock string, turns []history.Turn, userInput string) (string, error) {
	system := fmt.Sprintf(systemTemplate, contextBlock, userInput)

	if len(turns) > a.historyWindow {
		turns = turns[len(turns)-a.historyWindow:]
	}

	messages := make([]generator.Message, 0, len(turns)*2)
	for _, turn := range turns {
		messages = append(messages,
			generator.Message{Role: generator.RoleHuman, Content: turn.Human},
			generator.Message{Role: generator.RoleAssistant, Content: turn.Assistant},
		)
	}

	return a.generator.Generate(ctx, system, messages, userInput)
}

func New(g generator.Generator, opts ...Option) *Answerer {
	if g == nil {
		panic("generator is required")
	}

	a := &Answerer{
		generator:     g,
		historyWindow: defaultHistoryWindow,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}
