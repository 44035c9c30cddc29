package reformulator

import (
	"context"

	"github.com/w-h-a/recommender/generator"
	"github.com/w-h-a/recommender/history"
)

const systemPrompt = "Given the chat history and user question, rewrite it as a standalone question."

// Reformulator rewrites the latest user input into a query that is resolvable
// without the prior conversation turns.
type Reformulator struct {
	generator generator.Generator
}

// Reformulate returns the standalone retrieval query for the input. With no
// prior turns there is nothing to resolve, so the input passes through
// without a model call. Model errors propagate unmodified.
func (r *Reformulator) Reformulate(ctx context.Context, turns []history.Turn, userInput string) (string, error) {
	if len(turns) == 0 {
		return userInput, nil
	}

	messages := make([]generator.Message, 0, len(turns)*2)
	for _, turn := range turns {
		messages = append(messages,
			generator.Message{Role: generator.RoleHuman, Content: turn.Human},
			generator.Message{Role: generator.RoleAssistant, Content: turn.Assistant},
		)
	}

	return r.generator.Generate(ctx, systemPrompt, messages, userInput)
}

func New(g generator.Generator) *Reformulator {
	if g == nil {
		panic("generator is required")
	}

	return &Reformulator{
		generator: g,
	}
}
