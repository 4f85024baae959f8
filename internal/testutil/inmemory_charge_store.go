package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fleetadmin/internal/model"
	"fleetadmin/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMemoryChargeStore implements repository.ChargeRepository
type InMemoryChargeStore struct {
	mu      sync.RWMutex
	charges map[uuid.UUID]model.Charge
	locks   []string

	// Err, when set, is returned by Create.
	Err error
}

var _ repository.ChargeRepository = (*InMemoryChargeStore)(nil)

func NewInMemoryChargeStore() *InMemoryChargeStore {
	return &InMemoryChargeStore{charges: make(map[uuid.UUID]model.Charge)}
}

func (s *InMemoryChargeStore) Create(ctx context.Context, charge *model.Charge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	if charge.ID == uuid.Nil {
		charge.ID = uuid.New()
	}
	for i := range charge.TaxLines {
		if charge.TaxLines[i].ID == uuid.Nil {
			charge.TaxLines[i].ID = uuid.New()
		}
		charge.TaxLines[i].ChargeID = charge.ID
	}
	charge.CreatedAt = time.Now()
	s.charges[charge.ID] = *charge
	return nil
}

func (s *InMemoryChargeStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Charge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	charge, ok := s.charges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &charge, nil
}

func (s *InMemoryChargeStore) List(ctx context.Context, filter repository.ChargeListFilter) ([]model.Charge, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Charge, 0, len(s.charges))
	for _, c := range s.charges {
		if filter.Service != "" && c.Service != filter.Service {
			continue
		}
		if filter.Zone != "" && c.Zone != filter.Zone {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChargeNo > out[j].ChargeNo })

	total := int64(len(out))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(out) {
		return []model.Charge{}, total, nil
	}
	end := min(offset+filter.Limit, len(out))
	return out[offset:end], total, nil
}

func (s *InMemoryChargeStore) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, c := range s.charges {
		if strings.HasPrefix(c.ChargeNo, prefix) {
			n++
		}
	}
	return n, nil
}

// LockChargeSequence records the prefix. Serialization comes from SerialTxManager.
func (s *InMemoryChargeStore) LockChargeSequence(ctx context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locks = append(s.locks, prefix)
	return nil
}

// SequenceLocks returns the prefixes locked so far, in call order.
func (s *InMemoryChargeStore) SequenceLocks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.locks...)
}
