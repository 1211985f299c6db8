// internal/domain/transcript/memory.go
package transcript

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps transcripts in process memory. It is used when no
// database is configured.
type MemoryRepository struct {
	mu            sync.RWMutex
	conversations map[string]Conversation
	messages      map[string][]Message
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		conversations: make(map[string]Conversation),
		messages:      make(map[string][]Message),
	}
}

// EnsureConversation inserts c unless a conversation with its id exists
func (r *MemoryRepository) EnsureConversation(_ context.Context, c Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.conversations[c.ID]; !ok {
		r.conversations[c.ID] = c
	}
	return nil
}

// AddMessage appends m to its session
func (r *MemoryRepository) AddMessage(_ context.Context, m Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[m.SessionID] = append(r.messages[m.SessionID], m)
	return nil
}

// ListMessages returns the session's messages ordered by timestamp
func (r *MemoryRepository) ListMessages(_ context.Context, sessionID string) ([]Message, error) {
	r.mu.RLock()
	out := make([]Message, len(r.messages[sessionID]))
	copy(out, r.messages[sessionID])
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Ts < out[j].Ts })
	return out, nil
}

// Conversation returns a stored conversation
func (r *MemoryRepository) Conversation(id string) (Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conversations[id]
	return c, ok
}
