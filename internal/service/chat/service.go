package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/w-h-a/recommender/answerer"
	"github.com/w-h-a/recommender/assembler"
	"github.com/w-h-a/recommender/history"
	"github.com/w-h-a/recommender/reformulator"
	"github.com/w-h-a/recommender/retriever"
)

// Service runs the conversational pipeline for one inbound message:
// load history, reformulate, retrieve, assemble, generate, record.
type Service struct {
	history      history.Store
	reformulator *reformulator.Reformulator
	index        retriever.Index
	assembler    *assembler.Assembler
	answerer     *answerer.Answerer
}

// NewSession returns a fresh session key. Callers with real user identity
// should derive keys from it instead.
func (s *Service) NewSession(ctx context.Context) (string, error) {
	return uuid.NewString(), nil
}

// Turns exposes a snapshot of a session's history, oldest first.
func (s *Service) Turns(sessionKey string) []history.Turn {
	return s.history.GetOrCreate(sessionKey).Turns()
}

// Respond answers one user message. Each stage runs strictly after the
// previous one; any failure aborts the request and leaves the session's
// history untouched. Collaborator errors propagate unwrapped. Concurrent
// requests for the same session race on the read and final append; callers
// needing strict per-session ordering must serialize around Respond.
func (s *Service) Respond(ctx context.Context, sessionKey string, userInput string) (string, error) {
	// 1. Load session history
	turns := s.history.GetOrCreate(sessionKey).Turns()

	// 2. Rewrite the input into a standalone retrieval query
	query, err := s.reformulator.Reformulate(ctx, turns, userInput)
	if err != nil {
		return "", err
	}

	// 3. Fetch the top-K most relevant reviews
	results, err := s.index.Retrieve(ctx, query)
	if err != nil {
		return "", err
	}

	// 4. Assemble the grounding block
	contextBlock := s.assembler.Assemble(results)

	// 5. Generate the grounded answer
	answer, err := s.answerer.Answer(ctx, contextBlock, turns, userInput)
	if err != nil {
		return "", err
	}

	// 6. Record the turn only once the answer exists
	s.history.Append(sessionKey, userInput, answer)

	return answer, nil
}

func New(
	store history.Store,
	ref *reformulator.Reformulator,
	index retriever.Index,
	asm *assembler.Assembler,
	ans *answerer.Answerer,
) *Service {
	if store == nil {
		panic("history store is required")
	}

	if ref == nil {
		panic("reformulator is required")
	}

	if index == nil {
		panic("index is required")
	}

	if asm == nil {
		asm = assembler.New()
	}

	if ans == nil {
		panic("answerer is required")
	}

	return &Service{
		history:      store,
		reformulator: ref,
		index:        index,
		assembler:    asm,
		answerer:     ans,
	}
}
