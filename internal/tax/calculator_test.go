package tax_test

import (
	"testing"

	ierr "fleetadmin/internal/errors"
	"fleetadmin/internal/tax"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_SinglePercentage(t *testing.T) {
	tests := []struct {
		rate        string
		expectedTax string
		expectedSum string
	}{
		{"0", "0.00", "100.00"},
		{"5", "5.00", "105.00"},
		{"7.25", "7.25", "107.25"},
		{"8.875", "8.88", "108.88"},
		{"100", "100.00", "200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			res, err := tax.Calculate(dec("100"), []tax.Rule{percentRule("r1", 1, tt.rate, tax.MethodSimple)})
			require.NoError(t, err)
			require.Len(t, res.Lines, 1)
			assert.Equal(t, tt.expectedTax, res.Lines[0].TaxAmount.StringFixed(2))
			assert.Equal(t, tt.expectedTax, res.TotalTax.StringFixed(2))
			assert.Equal(t, tt.expectedSum, res.TotalAmount.StringFixed(2))
		})
	}
}

func TestCalculate_FixedIgnoresBase(t *testing.T) {
	for _, base := range []string{"0", "12.5", "1000"} {
		res, err := tax.Calculate(dec(base), []tax.Rule{fixedRule("f", 1, "3.50", tax.MethodSimple)})
		require.NoError(t, err)
		assert.Equal(t, "3.50", res.Lines[0].TaxAmount.StringFixed(2), "base %s", base)
	}
}

func TestCalculate_Hybrid(t *testing.T) {
	rule := percentRule("h", 1, "10", tax.MethodSimple)
	rule.TaxType = tax.TaxTypeHybrid
	rule.FixedAmount = decPtr("1.25")

	res, err := tax.Calculate(dec("40"), []tax.Rule{rule})
	require.NoError(t, err)
	assert.Equal(t, "5.25", res.TotalTax.StringFixed(2))
	assert.Equal(t, "45.25", res.TotalAmount.StringFixed(2))
}

func TestCalculate_EmptyRules(t *testing.T) {
	res, err := tax.Calculate(dec("42.10"), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
	assert.True(t, res.TotalTax.IsZero())
	assert.Equal(t, "42.10", res.TotalAmount.StringFixed(2))
	assert.Equal(t, "42.10", res.EffectiveBaseForInclusive.StringFixed(2))
}

func TestCalculate_NegativeBase(t *testing.T) {
	_, err := tax.Calculate(dec("-1"), nil)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidInput(err))
}

func TestCalculate_InvalidRule(t *testing.T) {
	broken := percentRule("bad", 1, "10", tax.MethodSimple)
	broken.Rate = nil

	_, err := tax.Calculate(dec("100"), []tax.Rule{broken})
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidRule(err))
}

func TestCalculate_MinimumThreshold(t *testing.T) {
	rule := percentRule("min", 1, "10", tax.MethodSimple)
	rule.MinimumTaxableAmount = dec("50")

	res, err := tax.Calculate(dec("30"), []tax.Rule{rule})
	require.NoError(t, err)
	require.Len(t, res.Lines, 1, "exempt rules are still reported")
	assert.True(t, res.Lines[0].TaxAmount.IsZero())
	assert.Equal(t, "30.00", res.TotalAmount.StringFixed(2))

	res, err = tax.Calculate(dec("50"), []tax.Rule{rule})
	require.NoError(t, err)
	assert.Equal(t, "5.00", res.Lines[0].TaxAmount.StringFixed(2), "threshold is inclusive")
}

func TestCalculate_MaximumCap(t *testing.T) {
	rule := percentRule("cap", 1, "50", tax.MethodSimple)
	rule.MaximumTaxAmount = decPtr("20")

	res, err := tax.Calculate(dec("100"), []tax.Rule{rule})
	require.NoError(t, err)
	assert.Equal(t, "20.00", res.Lines[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "120.00", res.TotalAmount.StringFixed(2))
}

func TestCalculate_Inclusive(t *testing.T) {
	rule := percentRule("vat", 1, "10", tax.MethodSimple)
	rule.IsInclusive = true

	res, err := tax.Calculate(dec("100"), []tax.Rule{rule})
	require.NoError(t, err)
	assert.Equal(t, "10.00", res.Lines[0].TaxAmount.StringFixed(2))
	assert.True(t, res.Lines[0].IsInclusive)
	assert.Equal(t, "10.00", res.TotalTax.StringFixed(2))
	assert.Equal(t, "100.00", res.TotalAmount.StringFixed(2))
	assert.Equal(t, "90.00", res.EffectiveBaseForInclusive.StringFixed(2))
}

func TestCalculate_StackedRulesIncludeInclusiveTax(t *testing.T) {
	levy := percentRule("levy", 1, "10", tax.MethodSimple)
	levy.IsInclusive = true

	for _, method := range []tax.CalculationMethod{tax.MethodCompound, tax.MethodCascading} {
		t.Run(string(method), func(t *testing.T) {
			stacked := percentRule("stacked", 2, "10", method)

			res, err := tax.Calculate(dec("100"), []tax.Rule{stacked, levy})
			require.NoError(t, err)
			require.Len(t, res.Lines, 2)
			assert.Equal(t, "110.00", res.Lines[1].TaxBase.StringFixed(2))
			assert.Equal(t, "11.00", res.Lines[1].TaxAmount.StringFixed(2))
			assert.Equal(t, "21.00", res.TotalTax.StringFixed(2))
			assert.Equal(t, "111.00", res.TotalAmount.StringFixed(2))
			assert.Equal(t, "90.00", res.EffectiveBaseForInclusive.StringFixed(2))
		})
	}
}

func TestCalculate_CompoundOrdering(t *testing.T) {
	r1 := percentRule("r1", 1, "10", tax.MethodCompound)
	r2 := percentRule("r2", 2, "10", tax.MethodCompound)

	res, err := tax.Calculate(dec("100"), []tax.Rule{r2, r1})
	require.NoError(t, err)
	assert.Equal(t, "r1", res.Lines[0].RuleID)
	assert.Equal(t, "10.00", res.Lines[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "110.00", res.Lines[1].TaxBase.StringFixed(2))
	assert.Equal(t, "11.00", res.Lines[1].TaxAmount.StringFixed(2))
	assert.Equal(t, "21.00", res.TotalTax.StringFixed(2))
	assert.Equal(t, "121.00", res.TotalAmount.StringFixed(2))
}

func TestCalculate_OrderMattersForFixedPercentageMix(t *testing.T) {
	fixed := fixedRule("fixed", 1, "5", tax.MethodCompound)
	percent := percentRule("pct", 2, "10", tax.MethodCompound)

	res, err := tax.Calculate(dec("100"), []tax.Rule{fixed, percent})
	require.NoError(t, err)
	assert.Equal(t, "15.50", res.TotalTax.StringFixed(2))

	fixed.PriorityOrder, percent.PriorityOrder = 2, 1
	swapped, err := tax.Calculate(dec("100"), []tax.Rule{fixed, percent})
	require.NoError(t, err)
	assert.Equal(t, "15.00", swapped.TotalTax.StringFixed(2))
	assert.Equal(t, "pct", swapped.Lines[0].RuleID)
}

func TestCalculate_Cascading(t *testing.T) {
	r1 := percentRule("a", 1, "10", tax.MethodCascading)
	r2 := percentRule("b", 2, "20", tax.MethodCascading)

	res, err := tax.Calculate(dec("100"), []tax.Rule{r1, r2})
	require.NoError(t, err)
	assert.Equal(t, "10.00", res.Lines[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "22.00", res.Lines[1].TaxAmount.StringFixed(2))
	assert.Equal(t, "132.00", res.TotalAmount.StringFixed(2))
}

func TestCalculate_SimpleIgnoresPriorTaxes(t *testing.T) {
	r1 := percentRule("a", 1, "10", tax.MethodSimple)
	r2 := percentRule("b", 2, "20", tax.MethodSimple)

	res, err := tax.Calculate(dec("100"), []tax.Rule{r1, r2})
	require.NoError(t, err)
	assert.Equal(t, "100.00", res.Lines[1].TaxBase.StringFixed(2))
	assert.Equal(t, "30.00", res.TotalTax.StringFixed(2))
}

func TestCalculate_TieBreakByID(t *testing.T) {
	b := fixedRule("b", 1, "1", tax.MethodSimple)
	a := fixedRule("a", 1, "2", tax.MethodSimple)

	res, err := tax.Calculate(dec("10"), []tax.Rule{b, a})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, []string{res.Lines[0].RuleID, res.Lines[1].RuleID})
}

func TestCalculate_RoundsPerLine(t *testing.T) {
	// 0.005 per line rounds up to 0.01 each; rounding the sum instead would give 0.01 total.
	r1 := percentRule("a", 1, "0.5", tax.MethodSimple)
	r2 := percentRule("b", 2, "0.5", tax.MethodSimple)

	res, err := tax.Calculate(dec("1"), []tax.Rule{r1, r2})
	require.NoError(t, err)
	assert.Equal(t, "0.01", res.Lines[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "0.02", res.TotalTax.StringFixed(2))
}

func TestCalculate_Idempotent(t *testing.T) {
	rules := []tax.Rule{
		percentRule("a", 1, "7.25", tax.MethodCompound),
		fixedRule("b", 2, "1.99", tax.MethodCascading),
	}

	first, err := tax.Calculate(dec("123.45"), rules)
	require.NoError(t, err)
	second, err := tax.Calculate(dec("123.45"), rules)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculate_EndToEndScenario(t *testing.T) {
	rules := []tax.Rule{
		percentRule("vat", 1, "8", tax.MethodSimple),
		fixedRule("fee", 2, "2", tax.MethodSimple),
	}

	res, err := tax.Calculate(dec("50"), rules)
	require.NoError(t, err)
	assert.Equal(t, "4.00", res.Lines[0].TaxAmount.StringFixed(2))
	assert.Equal(t, "2.00", res.Lines[1].TaxAmount.StringFixed(2))
	assert.Equal(t, "6.00", res.TotalTax.StringFixed(2))
	assert.Equal(t, "56.00", res.TotalAmount.StringFixed(2))
}
