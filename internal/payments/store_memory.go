package payments

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"paylens/pkg/platform/sentinel"
)

// InMemoryStore keeps payments in insertion order. FindAll hands out clones,
// so callers may mutate results freely.
type InMemoryStore struct {
	mu       sync.RWMutex
	payments []Payment
	index    map[uuid.UUID]struct{}
}

func NewInMemoryStore(seed ...Payment) *InMemoryStore {
	s := &InMemoryStore{index: make(map[uuid.UUID]struct{}, len(seed))}
	for _, p := range seed {
		s.payments = append(s.payments, p.Clone())
		s.index[p.ID] = struct{}{}
	}
	return s
}

func (s *InMemoryStore) Save(_ context.Context, payment Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[payment.ID]; exists {
		return fmt.Errorf("payment %s: %w", payment.ID, sentinel.ErrConflict)
	}
	s.payments = append(s.payments, payment.Clone())
	s.index[payment.ID] = struct{}{}
	return nil
}

func (s *InMemoryStore) FindAll(_ context.Context) ([]Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p.Clone())
	}
	return out, nil
}
