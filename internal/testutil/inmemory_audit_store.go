package testutil

import (
	"context"
	"sync"
	"time"

	"fleetadmin/internal/model"
	"fleetadmin/internal/repository"

	"github.com/google/uuid"
)

// InMemoryAuditStore implements repository.AuditRepository
type InMemoryAuditStore struct {
	mu      sync.RWMutex
	entries []model.AuditLog
	failure error
}

var _ repository.AuditRepository = (*InMemoryAuditStore)(nil)

func NewInMemoryAuditStore() *InMemoryAuditStore {
	return &InMemoryAuditStore{}
}

func (s *InMemoryAuditStore) Log(ctx context.Context, entry *model.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return s.failure
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	s.entries = append(s.entries, *entry)
	return nil
}

// FailWith makes every following Log call return err. Nil restores normal behaviour.
func (s *InMemoryAuditStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// List returns newest entries first.
func (s *InMemoryAuditStore) List(ctx context.Context, filter repository.AuditListFilter) ([]model.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.AuditLog, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if filter.EntityID != "" && e.EntityID != filter.EntityID {
			continue
		}
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		out = append(out, e)
	}

	total := int64(len(out))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(out) {
		return []model.AuditLog{}, total, nil
	}
	end := min(offset+filter.Limit, len(out))
	return out[offset:end], total, nil
}

// Actions returns the recorded actions in insertion order.
func (s *InMemoryAuditStore) Actions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Action)
	}
	return out
}
