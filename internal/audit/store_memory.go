package audit

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// ListByActions returns the most recent events matching any of the given
// actions, newest first. An empty actions slice matches everything.
func (s *InMemoryStore) ListByActions(_ context.Context, actions []string, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		wanted[a] = struct{}{}
	}

	var out []Event
	for i := len(s.events) - 1; i >= 0; i-- {
		if len(wanted) > 0 {
			if _, ok := wanted[s.events[i].Action]; !ok {
				continue
			}
		}
		out = append(out, s.events[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
