package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"fleetadmin/internal/model"
	"fleetadmin/internal/tax"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"
)

const activeRulesKey = "tax_rules:active"

// TaxRuleSource adapts TaxRuleRepository to the engine's tax.RuleSource.
type TaxRuleSource struct {
	repo TaxRuleRepository
}

func NewTaxRuleSource(repo TaxRuleRepository) *TaxRuleSource {
	return &TaxRuleSource{repo: repo}
}

func (s *TaxRuleSource) ListActiveRules(ctx context.Context) ([]tax.Rule, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r model.TaxRule, _ int) tax.Rule {
		return r.ToDomain()
	}), nil
}

// CachedRuleSource keeps a short-lived snapshot of the active rules in front of another source.
// Writers call Invalidate after changing rules. A fetch that overlaps an Invalidate is returned
// to its callers but never cached.
type CachedRuleSource struct {
	next  tax.RuleSource
	cache *cache.Cache
	group singleflight.Group

	mu         sync.Mutex
	generation uint64
}

func NewCachedRuleSource(next tax.RuleSource, ttl time.Duration) *CachedRuleSource {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedRuleSource{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *CachedRuleSource) ListActiveRules(ctx context.Context) ([]tax.Rule, error) {
	if cached, ok := s.cache.Get(activeRulesKey); ok {
		return cached.([]tax.Rule), nil
	}

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	// Concurrent misses within one generation share a single fetch.
	v, err, _ := s.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		rules, err := s.next.ListActiveRules(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.generation == gen {
			s.cache.SetDefault(activeRulesKey, rules)
		}
		s.mu.Unlock()
		return rules, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]tax.Rule), nil
}

func (s *CachedRuleSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.cache.Delete(activeRulesKey)
}
