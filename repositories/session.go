//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"chat-shell/errors"
	"chat-shell/session"
	"sync"
	"time"

	"github.com/google/uuid"
)

type SessionID = uuid.UUID

// ISessionRepository keeps one session.State per browser, for the process lifetime only.
type ISessionRepository interface {
	Create(id SessionID, state session.State) error
	Get(id SessionID) (session.State, error)
	Save(id SessionID, state session.State) error
	Delete(id SessionID)
	Count() int
}

type storedSession struct {
	state     session.State
	expiresAt time.Time
}

// MemorySessionRepository forgets a session ttl after its creation, when its
// cookie stops being valid. A zero ttl keeps sessions until Delete.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[SessionID]storedSession
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[SessionID]storedSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create also drops every expired session.
func (m *MemorySessionRepository) Create(id SessionID, state session.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for key, stored := range m.sessions {
		if m.expired(stored, now) {
			delete(m.sessions, key)
		}
	}
	stored := storedSession{state: state}
	if m.ttl > 0 {
		stored.expiresAt = now.Add(m.ttl)
	}
	m.sessions[id] = stored
	return nil
}

func (m *MemorySessionRepository) Get(id SessionID) (session.State, error) {
	m.mu.RLock()
	stored, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return session.State{}, errors.ErrSessionNotFound
	}
	if m.expired(stored, m.now()) {
		m.Delete(id)
		return session.State{}, errors.ErrSessionNotFound
	}
	return stored.state, nil
}

// Save keeps the original expiry.
func (m *MemorySessionRepository) Save(id SessionID, state session.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.sessions[id]
	if !ok || m.expired(stored, m.now()) {
		return errors.ErrSessionNotFound
	}
	stored.state = state
	m.sessions[id] = stored
	return nil
}

func (m *MemorySessionRepository) Delete(id SessionID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the live sessions.
func (m *MemorySessionRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.now()
	count := 0
	for _, stored := range m.sessions {
		if !m.expired(stored, now) {
			count++
		}
	}
	return count
}

func (m *MemorySessionRepository) expired(stored storedSession, now time.Time) bool {
	return m.ttl > 0 && !now.Before(stored.expiresAt)
}
