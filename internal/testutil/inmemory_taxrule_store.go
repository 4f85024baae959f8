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
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// InMemoryTaxRuleStore implements repository.TaxRuleRepository
type InMemoryTaxRuleStore struct {
	mu    sync.RWMutex
	rules map[uuid.UUID]model.TaxRule
	// Err, when set, is returned by every call.
	Err error
}

var _ repository.TaxRuleRepository = (*InMemoryTaxRuleStore)(nil)

func NewInMemoryTaxRuleStore() *InMemoryTaxRuleStore {
	return &InMemoryTaxRuleStore{rules: make(map[uuid.UUID]model.TaxRule)}
}

func (s *InMemoryTaxRuleStore) Create(ctx context.Context, rule *model.TaxRule) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	now := time.Now()
	rule.CreatedAt, rule.UpdatedAt = now, now
	s.rules[rule.ID] = *rule
	return nil
}

func (s *InMemoryTaxRuleStore) Update(ctx context.Context, rule *model.TaxRule) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rules[rule.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	rule.UpdatedAt = time.Now()
	s.rules[rule.ID] = *rule
	return nil
}

func (s *InMemoryTaxRuleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rules, id)
	return nil
}

func (s *InMemoryTaxRuleStore) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRule, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, ok := s.rules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rule, nil
}

func (s *InMemoryTaxRuleStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.TaxRule, error) {
	return s.filter(func(r model.TaxRule) bool { return lo.Contains(ids, r.ID) })
}

func (s *InMemoryTaxRuleStore) List(ctx context.Context, filter repository.TaxRuleListFilter) ([]model.TaxRule, int64, error) {
	rules, err := s.filter(func(r model.TaxRule) bool {
		if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
			if !strings.Contains(strings.ToLower(r.Name), search) && !strings.Contains(strings.ToLower(r.Description), search) {
				return false
			}
		}
		if filter.TaxType != "" && r.TaxType != filter.TaxType {
			return false
		}
		if filter.ApplicableTo != "" && r.ApplicableTo != filter.ApplicableTo {
			return false
		}
		if filter.IsActive != nil && r.IsActive != *filter.IsActive {
			return false
		}
		return true
	})
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(rules))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(rules) {
		return []model.TaxRule{}, total, nil
	}
	end := min(offset+filter.Limit, len(rules))
	return rules[offset:end], total, nil
}

func (s *InMemoryTaxRuleStore) ListAll(ctx context.Context) ([]model.TaxRule, error) {
	return s.filter(func(model.TaxRule) bool { return true })
}

func (s *InMemoryTaxRuleStore) ListActive(ctx context.Context) ([]model.TaxRule, error) {
	return s.filter(func(r model.TaxRule) bool { return r.IsActive })
}

func (s *InMemoryTaxRuleStore) SetActive(ctx context.Context, ids []uuid.UUID, active bool) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, id := range ids {
		if rule, ok := s.rules[id]; ok {
			rule.IsActive = active
			s.rules[id] = rule
			n++
		}
	}
	return n, nil
}

func (s *InMemoryTaxRuleStore) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := s.rules[id]; ok {
			delete(s.rules, id)
			n++
		}
	}
	return n, nil
}

// filter returns matching rules ordered by priority, then id.
func (s *InMemoryTaxRuleStore) filter(keep func(model.TaxRule) bool) ([]model.TaxRule, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.TaxRule, 0, len(s.rules))
	for _, r := range s.rules {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PriorityOrder != out[j].PriorityOrder {
			return out[i].PriorityOrder < out[j].PriorityOrder
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}
