package memory

import (
	"sync"

	"github.com/w-h-a/recommender/history"
)

// memoryStore keeps sessions for the lifetime of the process. There is no
// bound on session count or length; bounding happens at prompt-build time.
type memoryStore struct {
	sessions map[string]*history.Session
	mtx      sync.RWMutex
}

func (m *memoryStore) GetOrCreate(sessionKey string) *history.Session {
	m.mtx.RLock()
	session, ok := m.sessions[sessionKey]
	m.mtx.RUnlock()
	if ok {
		return session
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	if session, ok := m.sessions[sessionKey]; ok {
		return session
	}

	session = &history.Session{}
	m.sessions[sessionKey] = session

	return session
}

func (m *memoryStore) Append(sessionKey string, humanText string, assistantText string) {
	m.GetOrCreate(sessionKey).Append(humanText, assistantText)
}

func NewStore() history.Store {
	return &memoryStore{
		sessions: map[string]*history.Session{},
		mtx:      sync.RWMutex{},
	}
}
