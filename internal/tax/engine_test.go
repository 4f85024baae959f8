package tax_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	ierr "fleetadmin/internal/errors"
	"fleetadmin/internal/tax"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	mu    sync.Mutex
	rules []tax.Rule
	err   error
	calls int
}

func (s *staticSource) ListActiveRules(ctx context.Context) ([]tax.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.rules, nil
}

var fixedNow = time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)

func newEngine(src tax.RuleSource) *tax.Engine {
	return tax.NewEngine(src, tax.WithClock(func() time.Time { return fixedNow }))
}

func TestEngine_ComputeTax_FiltersAndSorts(t *testing.T) {
	ridesOnly := percentRule("rides", 1, "10", tax.MethodSimple)
	ridesOnly.ApplicableTo = tax.ApplicableToRidesOnly

	airportFee := fixedRule("airport", 0, "3", tax.MethodSimple)
	airportFee.ApplicableZones = []string{"airport"}

	expired := fixedRule("old", 0, "99", tax.MethodSimple)
	expired.ExpiresAt = lo.ToPtr(fixedNow.Add(-time.Hour))

	delivery := percentRule("delivery", 0, "50", tax.MethodSimple)
	delivery.ApplicableTo = tax.ApplicableToDeliveryOnly

	src := &staticSource{rules: []tax.Rule{ridesOnly, expired, airportFee, delivery}}
	res, err := newEngine(src).ComputeTax(context.Background(), tax.ChargeContext{
		BaseAmount: dec("40"),
		Zone:       "airport",
		Service:    "ride",
	})
	require.NoError(t, err)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "airport", res.Lines[0].RuleID)
	assert.Equal(t, "rides", res.Lines[1].RuleID)
	assert.Equal(t, "7.00", res.TotalTax.StringFixed(2))
	assert.Equal(t, "47.00", res.TotalAmount.StringFixed(2))
}

func TestEngine_ComputeTax_UsesEvaluationTime(t *testing.T) {
	seasonal := fixedRule("seasonal", 1, "1", tax.MethodSimple)
	seasonal.StartsAt = lo.ToPtr(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))

	engine := newEngine(&staticSource{rules: []tax.Rule{seasonal}})

	res, err := engine.ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("10"), Service: "ride"})
	require.NoError(t, err)
	assert.Empty(t, res.Lines, "clock is before the window")

	res, err = engine.ComputeTax(context.Background(), tax.ChargeContext{
		BaseAmount:     dec("10"),
		Service:        "ride",
		EvaluationTime: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, res.Lines, 1)
}

func TestEngine_ComputeTax_NegativeBase(t *testing.T) {
	src := &staticSource{}
	_, err := newEngine(src).ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("-5")})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidInput(err))
	assert.Zero(t, src.calls, "input is rejected before the rule fetch")
}

func TestEngine_ComputeTax_MissingServiceForScopedRule(t *testing.T) {
	scoped := percentRule("rides", 1, "10", tax.MethodSimple)
	scoped.ApplicableTo = tax.ApplicableToRidesOnly

	_, err := newEngine(&staticSource{rules: []tax.Rule{scoped}}).
		ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("10")})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidInput(err))

	// an inactive scoped rule does not make the service mandatory
	scoped.IsActive = false
	res, err := newEngine(&staticSource{rules: []tax.Rule{scoped}}).
		ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("10")})
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
}

func TestEngine_ComputeTax_RepositoryFailure(t *testing.T) {
	cause := errors.New("connection refused")
	_, err := newEngine(&staticSource{err: cause}).
		ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("10"), Service: "ride"})
	require.Error(t, err)
	assert.True(t, ierr.IsRepositoryUnavailable(err))
	assert.ErrorIs(t, err, cause)
}

func TestEngine_ComputeTax_CorruptRule(t *testing.T) {
	corrupt := fixedRule("corrupt", 1, "1", tax.MethodSimple)
	corrupt.FixedAmount = nil

	_, err := newEngine(&staticSource{rules: []tax.Rule{corrupt}}).
		ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("10"), Service: "ride"})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidRule(err))
}

func TestEngine_ComputeTax_UnknownScopeIsNotSkipped(t *testing.T) {
	broken := percentRule("broken", 1, "10", tax.MethodSimple)
	broken.ApplicableTo = tax.ApplicableTo("everything")

	res, err := newEngine(&staticSource{rules: []tax.Rule{broken}}).
		ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("100"), Service: "ride"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, ierr.IsInvalidRule(err))

	// Switched off, the same rule no longer blocks the charge.
	broken.IsActive = false
	res, err = newEngine(&staticSource{rules: []tax.Rule{broken, fixedRule("fee", 2, "1", tax.MethodSimple)}}).
		ComputeTax(context.Background(), tax.ChargeContext{BaseAmount: dec("100"), Service: "ride"})
	require.NoError(t, err)
	assert.Equal(t, "1.00", res.TotalTax.StringFixed(2))
}

func TestEngine_ComputeTax_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEngine(&staticSource{}).ComputeTax(ctx, tax.ChargeContext{BaseAmount: dec("1"), Service: "ride"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_ComputeBatch(t *testing.T) {
	ridesOnly := percentRule("rides", 1, "10", tax.MethodSimple)
	ridesOnly.ApplicableTo = tax.ApplicableToRidesOnly
	src := &staticSource{rules: []tax.Rule{ridesOnly, fixedRule("fee", 2, "1", tax.MethodSimple)}}

	charges := make([]tax.ChargeContext, 0, 20)
	for i := 0; i < 20; i++ {
		service := "ride"
		if i%2 == 1 {
			service = "delivery"
		}
		charges = append(charges, tax.ChargeContext{BaseAmount: dec("100"), Service: service})
	}

	results, err := newEngine(src).ComputeBatch(context.Background(), charges)
	require.NoError(t, err)
	require.Len(t, results, len(charges))
	assert.Equal(t, 1, src.calls, "rules are fetched once per batch")
	for i, res := range results {
		if i%2 == 0 {
			assert.Equal(t, "11.00", res.TotalTax.StringFixed(2), "charge %d", i)
		} else {
			assert.Equal(t, "1.00", res.TotalTax.StringFixed(2), "charge %d", i)
		}
	}
}

func TestEngine_ComputeBatch_SingleWorker(t *testing.T) {
	src := &staticSource{rules: []tax.Rule{percentRule("vat", 1, "10", tax.MethodSimple)}}
	engine := tax.NewEngine(src,
		tax.WithClock(func() time.Time { return fixedNow }),
		tax.WithBatchConcurrency(1),
	)

	results, err := engine.ComputeBatch(context.Background(), []tax.ChargeContext{
		{BaseAmount: dec("10"), Service: "ride"},
		{BaseAmount: dec("20"), Service: "ride"},
		{BaseAmount: dec("30"), Service: "ride"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1.00", "2.00", "3.00"}, lo.Map(results, func(r *tax.Result, _ int) string {
		return r.TotalTax.StringFixed(2)
	}))
}

func TestEngine_ComputeBatch_Errors(t *testing.T) {
	engine := newEngine(&staticSource{})

	empty, err := engine.ComputeBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = engine.ComputeBatch(context.Background(), []tax.ChargeContext{
		{BaseAmount: dec("1"), Service: "ride"},
		{BaseAmount: dec("-1"), Service: "ride"},
	})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidInput(err))
}

func TestEngine_Preview(t *testing.T) {
	draft := percentRule("", 1, "15", tax.MethodSimple)
	draft.MaximumTaxAmount = decPtr("12")
	draft.ApplicableTo = tax.ApplicableToDeliveryOnly

	res, err := newEngine(&staticSource{}).Preview(draft, dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "12.00", res.TotalTax.StringFixed(2))
	assert.Equal(t, "112.00", res.TotalAmount.StringFixed(2))
}
