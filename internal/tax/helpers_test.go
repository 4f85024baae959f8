package tax_test

import (
	"fleetadmin/internal/tax"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	return lo.ToPtr(dec(s))
}

func percentRule(id string, priority int, rate string, method tax.CalculationMethod) tax.Rule {
	return tax.Rule{
		ID:                id,
		Name:              "Percentage " + rate,
		TaxType:           tax.TaxTypePercentage,
		Rate:              decPtr(rate),
		CalculationMethod: method,
		ApplicableTo:      tax.ApplicableToAll,
		PriorityOrder:     priority,
		IsActive:          true,
	}
}

func fixedRule(id string, priority int, amount string, method tax.CalculationMethod) tax.Rule {
	return tax.Rule{
		ID:                id,
		Name:              "Fixed " + amount,
		TaxType:           tax.TaxTypeFixed,
		FixedAmount:       decPtr(amount),
		CalculationMethod: method,
		ApplicableTo:      tax.ApplicableToAll,
		PriorityOrder:     priority,
		IsActive:          true,
	}
}
