package conversation

import (
	"sync"

	"dev-assistant/internal/llm"
)

// DefaultCapacity bounds a session's history when no explicit capacity
// is configured.
const DefaultCapacity = 20

// Buffer holds the most recent turns of one chat session. Oldest turns
// are evicted first once the capacity is reached.
type Buffer struct {
	capacity int
	turns    []llm.Message
}

func newBuffer(capacity int) *Buffer {
	return &Buffer{capacity: capacity}
}

func (b *Buffer) append(role, content string) {
	if len(b.turns) >= b.capacity {
		b.turns = b.turns[1:]
	}
	b.turns = append(b.turns, llm.Message{Role: role, Content: content})
}

func (b *Buffer) snapshot() []llm.Message {
	out := make([]llm.Message, len(b.turns))
	copy(out, b.turns)
	return out
}

// Manager keeps one bounded buffer per session so concurrent chat
// sessions do not interleave into each other's history.
type Manager struct {
	mu       sync.RWMutex
	capacity int
	sessions map[string]*Buffer
}

func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{capacity: capacity, sessions: make(map[string]*Buffer)}
}

func (m *Manager) AppendUser(sessionID, content string) {
	m.append(sessionID, "user", content)
}

func (m *Manager) AppendAssistant(sessionID, content string) {
	m.append(sessionID, "assistant", content)
}

func (m *Manager) append(sessionID, role, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.sessions[sessionID]
	if !ok {
		b = newBuffer(m.capacity)
		m.sessions[sessionID] = b
	}
	b.append(role, content)
}

// Snapshot returns the session's turns in chronological order, ready
// for direct use as LLM conversation input.
func (m *Manager) Snapshot(sessionID string) []llm.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}
	return b.snapshot()
}

func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}
