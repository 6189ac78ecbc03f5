package state

import (
	"sync"

	"github.com/google/uuid"
)

// Role identifies the author of a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one chat message. ID is assigned on append.
type Entry struct {
	ID   string
	Role Role
	Text string
}

// Transcript is the append-only chat log. Its lifecycle is independent of
// the financial snapshot: nothing clears it short of process exit. No size
// bound is enforced.
type Transcript struct {
	mu      sync.Mutex
	entries []Entry
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds one entry and returns it with its assigned ID.
func (t *Transcript) Append(role Role, text string) Entry {
	e := Entry{ID: uuid.NewString(), Role: role, Text: text}
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
	return e
}

// Entries returns a copy of the log in append order.
func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Entry(nil), t.entries...)
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
