package notify

import (
	"context"
	"sync"

	"gigflow/internal/entity"
)

// MemoryInbox keeps up to capacity notifications per recipient in process memory.
type MemoryInbox struct {
	mu       sync.RWMutex
	capacity int
	inboxes  map[string][]entity.Notification
}

func NewMemoryInbox(capacity int) *MemoryInbox {
	return &MemoryInbox{
		capacity: capacity,
		inboxes:  make(map[string][]entity.Notification),
	}
}

func (m *MemoryInbox) Publish(_ context.Context, n entity.Notification) error {
	if n.Recipient == "" {
		return ErrEmptyRecipient
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	inbox := append(m.inboxes[n.Recipient], n)
	if m.capacity > 0 && len(inbox) > m.capacity {
		inbox = inbox[len(inbox)-m.capacity:]
	}
	m.inboxes[n.Recipient] = inbox

	return nil
}

func (m *MemoryInbox) List(_ context.Context, recipient string, limit int) ([]entity.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inbox := m.inboxes[recipient]
	n := len(inbox)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]entity.Notification, 0, n)
	for i := len(inbox) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, inbox[i])
	}

	return out, nil
}
