package interview

import (
	"context"
	"sync"
)

// Store persists the interview state. Load must reproduce the saved state
// exactly: it never regenerates questions or rescores answers.
type Store interface {
	SaveCandidate(ctx context.Context, c Candidate) error
	SaveSession(ctx context.Context, s Session) error
	Load(ctx context.Context) (State, error)
}

type memoryStore struct {
	mu         sync.RWMutex
	candidates map[string]Candidate
	order      []string
	session    Session
}

// NewInMemoryStore backs the service with process memory, enough for tests
// and throwaway runs.
func NewInMemoryStore() Store {
	return &memoryStore{
		candidates: map[string]Candidate{},
		session:    Session{Status: StatusIdle},
	}
}

func (m *memoryStore) SaveCandidate(_ context.Context, c Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.candidates[c.ID]; !ok {
		m.order = append(m.order, c.ID)
	}
	m.candidates[c.ID] = c
	return nil
}

func (m *memoryStore) SaveSession(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.WelcomeBack = false // transient
	m.session = s
	return nil
}

func (m *memoryStore) Load(_ context.Context) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := State{Session: m.session}
	for _, id := range m.order {
		c := m.candidates[id]
		st.Candidates = append(st.Candidates, &c)
	}
	return st, nil
}
