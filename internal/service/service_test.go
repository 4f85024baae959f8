package service_test

import (
	"sync"
	"time"

	"fleetadmin/internal/logger"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/service"
	"fleetadmin/internal/tax"
	"fleetadmin/internal/testutil"

	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)

const testUserID = "0b6f3c3e-8f55-4a57-9d57-1d2c5f0d2a11"

type publishedEvent struct {
	Type    string
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, Payload: payload})
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// ServiceSuite wires every service over in-memory stores and a cached rule source.
type ServiceSuite struct {
	suite.Suite

	rules  *testutil.InMemoryTaxRuleStore
	charge *testutil.InMemoryChargeStore
	audit  *testutil.InMemoryAuditStore
	cache  *repository.CachedRuleSource
	events *recordingPublisher
	params service.ServiceParams
}

func (s *ServiceSuite) SetupTest() {
	s.rules = testutil.NewInMemoryTaxRuleStore()
	s.charge = testutil.NewInMemoryChargeStore()
	s.audit = testutil.NewInMemoryAuditStore()
	s.cache = repository.NewCachedRuleSource(repository.NewTaxRuleSource(s.rules), time.Hour)
	s.events = &recordingPublisher{}

	clock := func() time.Time { return testNow }
	s.params = service.ServiceParams{
		Logger:      logger.NewNop(),
		TaxRuleRepo: s.rules,
		ChargeRepo:  s.charge,
		AuditRepo:   s.audit,
		TxManager:   testutil.NoopTxManager{},
		Engine:      tax.NewEngine(s.cache, tax.WithClock(clock)),
		RuleCache:   s.cache,
		Events:      s.events,
		Now:         clock,
	}
}
