package tax

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeContext is the per-calculation input describing one charge.
type ChargeContext struct {
	BaseAmount  decimal.Decimal
	Zone        string
	VehicleType string
	Service     string
	// EvaluationTime decides which rules are in their active window. Zero means now.
	EvaluationTime time.Time
}

// Line is the contribution of one rule to a Result.
type Line struct {
	RuleID      string
	RuleName    string
	TaxBase     decimal.Decimal
	TaxAmount   decimal.Decimal
	IsInclusive bool
}

// Result is the breakdown of a calculation.
type Result struct {
	BaseAmount decimal.Decimal
	Lines      []Line
	TotalTax   decimal.Decimal
	// TotalAmount is BaseAmount plus every exclusive tax.
	TotalAmount decimal.Decimal
	// EffectiveBaseForInclusive is BaseAmount net of inclusive taxes.
	EffectiveBaseForInclusive decimal.Decimal
}

const moneyPlaces = 2

// Calculate applies rules to baseAmount in priority order.
//
// Each line amount is capped and then rounded half-up to cents once; sums are built from the
// rounded line amounts. Inclusive lines count toward TotalTax but not TotalAmount.
func Calculate(baseAmount decimal.Decimal, rules []Rule) (*Result, error) {
	if baseAmount.IsNegative() {
		return nil, negativeBase(baseAmount)
	}
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	ordered := SortRules(rules)
	result := &Result{
		BaseAmount:                baseAmount,
		Lines:                     make([]Line, 0, len(ordered)),
		TotalTax:                  decimal.Zero,
		TotalAmount:               baseAmount,
		EffectiveBaseForInclusive: baseAmount,
	}

	applied := decimal.Zero
	running := baseAmount
	for _, r := range ordered {
		var taxBase decimal.Decimal
		switch r.CalculationMethod {
		case MethodCompound:
			taxBase = baseAmount.Add(applied)
		case MethodCascading:
			taxBase = running
		default:
			taxBase = baseAmount
		}

		amount := decimal.Zero
		if !taxBase.LessThan(r.MinimumTaxableAmount) {
			amount = r.rawTax(taxBase)
			if r.MaximumTaxAmount != nil && amount.GreaterThan(*r.MaximumTaxAmount) {
				amount = *r.MaximumTaxAmount
			}
			amount = amount.Round(moneyPlaces)
		}

		result.Lines = append(result.Lines, Line{
			RuleID:      r.ID,
			RuleName:    r.Name,
			TaxBase:     taxBase,
			TaxAmount:   amount,
			IsInclusive: r.IsInclusive,
		})

		// Inclusive lines feed later compound and cascading bases too.
		applied = applied.Add(amount)
		running = running.Add(amount)
		result.TotalTax = result.TotalTax.Add(amount)
		if r.IsInclusive {
			result.EffectiveBaseForInclusive = result.EffectiveBaseForInclusive.Sub(amount)
		} else {
			result.TotalAmount = result.TotalAmount.Add(amount)
		}
	}

	return result, nil
}
