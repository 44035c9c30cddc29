package history

import "sync"

// Turn is one human utterance paired with the assistant's answer.
// Turns are immutable once appended.
type Turn struct {
	Human     string
	Assistant string
}

// Store owns session histories on behalf of the orchestrator. Appends for a
// given session are strictly ordered; sessions are fully independent.
type Store interface {
	GetOrCreate(sessionKey string) *Session
	Append(sessionKey string, humanText string, assistantText string)
}

// Session holds the ordered turn sequence for one session key. The same
// instance is returned for every reference to the key, so appends are visible
// to all holders.
type Session struct {
	mtx   sync.RWMutex
	turns []Turn
}

func (s *Session) Append(humanText string, assistantText string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.turns = append(s.turns, Turn{Human: humanText, Assistant: assistantText})
}

// Turns returns a snapshot of the session's turn sequence in arrival order.
func (s *Session) Turns() []Turn {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	cpy := make([]Turn, len(s.turns))
	copy(cpy, s.turns)
	return cpy
}

func (s *Session) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.turns)
}
