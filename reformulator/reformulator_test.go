package reformulator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/recommender/generator"
	"github.com/w-h-a/recommender/history"
)

type fakeGenerator struct {
	calls    int
	system   string
	history  []generator.Message
	input    string
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, system string, history []generator.Message, input string) (string, error) {
	f.calls++
	f.system = system
	f.history = history
	f.input = input
	return f.response, f.err
}

func TestEmptyHistoryPassesInputThrough(t *testing.T) {
	gen := &fakeGenerator{response: "should not be used"}

	query, err := New(gen).Reformulate(context.Background(), nil, "best phone under 20000")

	require.NoError(t, err)
	assert.Equal(t, "best phone under 20000", query)
	assert.Contains(t, query, "phone")
	assert.Zero(t, gen.calls)
}

func TestHistoryIsSentToTheModel(t *testing.T) {
	gen := &fakeGenerator{response: "what do reviews say about the iPhone 13 camera?"}

	turns := []history.Turn{
		{Human: "Tell me about iPhone 13 camera", Assistant: "Reviewers love it."},
	}

	query, err := New(gen).Reformulate(context.Background(), turns, "what about its battery?")

	require.NoError(t, err)
	assert.Equal(t, "what do reviews say about the iPhone 13 camera?", query)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "what about its battery?", gen.input)
	assert.Contains(t, gen.system, "standalone question")

	require.Len(t, gen.history, 2)
	assert.Equal(t, generator.RoleHuman, gen.history[0].Role)
	assert.Equal(t, "Tell me about iPhone 13 camera", gen.history[0].Content)
	assert.Equal(t, generator.RoleAssistant, gen.history[1].Role)
}

func TestModelErrorsPropagateUnmodified(t *testing.T) {
	boom := errors.New("rate limited")
	gen := &fakeGenerator{err: boom}

	turns := []history.Turn{{Human: "q", Assistant: "a"}}

	_, err := New(gen).Reformulate(context.Background(), turns, "follow up")

	assert.ErrorIs(t, err, boom)
}
