package tax

import (
	"context"
	"fmt"
	"strings"
	"time"

	ierr "fleetadmin/internal/errors"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
)

// RuleSource supplies the candidate rules for a calculation.
type RuleSource interface {
	ListActiveRules(ctx context.Context) ([]Rule, error)
}

// Engine loads rules, filters them for a charge, orders them and runs Calculate.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	source     RuleSource
	now        func() time.Time
	batchLimit int
}

type Option func(*Engine)

// WithClock overrides the clock used when a ChargeContext has no EvaluationTime.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithBatchConcurrency bounds the goroutines ComputeBatch uses.
func WithBatchConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.batchLimit = n
		}
	}
}

func NewEngine(source RuleSource, opts ...Option) *Engine {
	e := &Engine{
		source:     source,
		now:        time.Now,
		batchLimit: 8,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeTax computes the taxes owed on one charge.
func (e *Engine) ComputeTax(ctx context.Context, charge ChargeContext) (*Result, error) {
	if charge.BaseAmount.IsNegative() {
		return nil, negativeBase(charge.BaseAmount)
	}

	rules, err := e.loadRules(ctx)
	if err != nil {
		return nil, err
	}
	return e.compute(charge, rules)
}

// ComputeBatch computes many charges against a single rule snapshot. Results keep the input order.
func (e *Engine) ComputeBatch(ctx context.Context, charges []ChargeContext) ([]*Result, error) {
	if len(charges) == 0 {
		return []*Result{}, nil
	}
	for i, charge := range charges {
		if charge.BaseAmount.IsNegative() {
			return nil, ierr.WithError(negativeBase(charge.BaseAmount)).
				WithMessage(fmt.Sprintf("charge %d", i)).
				Error()
		}
	}

	rules, err := e.loadRules(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(charges))
	p := pool.New().
		WithMaxGoroutines(e.batchLimit).
		WithErrors().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for i, charge := range charges {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.compute(charge, rules)
			if err != nil {
				return ierr.WithError(err).WithMessage(fmt.Sprintf("charge %d", i)).Error()
			}
			results[i] = res
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Preview runs a single draft rule against amount, ignoring applicability and the rule source.
func (e *Engine) Preview(rule Rule, amount decimal.Decimal) (*Result, error) {
	return Calculate(amount, []Rule{rule})
}

func (e *Engine) loadRules(ctx context.Context) ([]Rule, error) {
	rules, err := e.source.ListActiveRules(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Tax rules are temporarily unavailable").
			Mark(ierr.ErrRepositoryUnavailable)
	}
	return rules, nil
}

func (e *Engine) compute(charge ChargeContext, rules []Rule) (*Result, error) {
	if charge.EvaluationTime.IsZero() {
		charge.EvaluationTime = e.now()
	}
	// A live rule with a broken scope would otherwise be filtered out and charge zero tax.
	for _, r := range rules {
		if !r.ActiveAt(charge.EvaluationTime) {
			continue
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	if err := validateCharge(charge, rules); err != nil {
		return nil, err
	}

	applicable := lo.Filter(rules, func(r Rule, _ int) bool {
		return IsApplicable(r, charge)
	})
	return Calculate(charge.BaseAmount, SortRules(applicable))
}

// validateCharge rejects a charge without a service when a live rule is scoped by service.
func validateCharge(charge ChargeContext, rules []Rule) error {
	if strings.TrimSpace(charge.Service) != "" {
		return nil
	}
	scoped, found := lo.Find(rules, func(r Rule) bool {
		return r.ApplicableTo != ApplicableToAll && r.ActiveAt(charge.EvaluationTime)
	})
	if !found {
		return nil
	}
	return ierr.NewError("missing service for scoped tax rule").
		WithHintf("Service is required: tax rule %q is scoped to %s", scoped.Name, scoped.ApplicableTo).
		WithReportableDetails(map[string]any{"rule_id": scoped.ID}).
		Mark(ierr.ErrInvalidInput)
}

func negativeBase(amount decimal.Decimal) error {
	return ierr.NewError("negative base amount").
		WithHintf("Base amount must not be negative, got %s", amount.String()).
		Mark(ierr.ErrInvalidInput)
}
