package tax

import (
	"sort"
	"strings"
	"time"

	ierr "fleetadmin/internal/errors"

	"github.com/shopspring/decimal"
)

// TaxType selects how a rule turns a taxable amount into tax.
type TaxType string

const (
	TaxTypePercentage TaxType = "percentage"
	TaxTypeFixed      TaxType = "fixed"
	TaxTypeHybrid     TaxType = "hybrid"
)

func (t TaxType) Valid() bool {
	switch t {
	case TaxTypePercentage, TaxTypeFixed, TaxTypeHybrid:
		return true
	}
	return false
}

// CalculationMethod selects the amount a rule taxes against.
type CalculationMethod string

const (
	// MethodSimple always taxes the original base amount.
	MethodSimple CalculationMethod = "simple"
	// MethodCompound taxes the base plus every tax applied before it.
	MethodCompound CalculationMethod = "compound"
	// MethodCascading taxes the running total left by the previous rule.
	MethodCascading CalculationMethod = "cascading"
)

func (m CalculationMethod) Valid() bool {
	switch m {
	case MethodSimple, MethodCompound, MethodCascading:
		return true
	}
	return false
}

// ApplicableTo scopes a rule to a service family.
type ApplicableTo string

const (
	ApplicableToAll          ApplicableTo = "all"
	ApplicableToRidesOnly    ApplicableTo = "rides_only"
	ApplicableToDeliveryOnly ApplicableTo = "delivery_only"
	ApplicableToSpecific     ApplicableTo = "specific"
)

func (a ApplicableTo) Valid() bool {
	switch a {
	case ApplicableToAll, ApplicableToRidesOnly, ApplicableToDeliveryOnly, ApplicableToSpecific:
		return true
	}
	return false
}

// Service names matched by the RidesOnly and DeliveryOnly scopes.
const (
	ServiceRide     = "ride"
	ServiceDelivery = "delivery"
)

var (
	hundred = decimal.NewFromInt(100)
)

// Rule is an immutable snapshot of one tax setting.
type Rule struct {
	ID          string
	Name        string
	Description string

	TaxType           TaxType
	Rate              *decimal.Decimal // percent, 7.25 means 7.25%
	FixedAmount       *decimal.Decimal
	CalculationMethod CalculationMethod

	MinimumTaxableAmount decimal.Decimal
	MaximumTaxAmount     *decimal.Decimal
	IsInclusive          bool

	ApplicableTo           ApplicableTo
	ApplicableZones        []string
	ExcludedZones          []string
	ApplicableVehicleTypes []string
	ExcludedVehicleTypes   []string
	ApplicableServices     []string
	ExcludedServices       []string

	PriorityOrder int
	StartsAt      *time.Time
	ExpiresAt     *time.Time
	IsActive      bool
}

// Validate checks the type/amount invariants of the rule. Errors are marked ErrInvalidRule.
func (r Rule) Validate() error {
	if !r.TaxType.Valid() {
		return invalidRule(r, "unknown tax type %q", r.TaxType)
	}
	if !r.CalculationMethod.Valid() {
		return invalidRule(r, "unknown calculation method %q", r.CalculationMethod)
	}
	if !r.ApplicableTo.Valid() {
		return invalidRule(r, "unknown applicable_to %q", r.ApplicableTo)
	}

	if r.TaxType == TaxTypePercentage || r.TaxType == TaxTypeHybrid {
		if r.Rate == nil {
			return invalidRule(r, "rate is required for %s taxes", r.TaxType)
		}
		if r.Rate.IsNegative() || r.Rate.GreaterThan(hundred) {
			return invalidRule(r, "rate must be between 0 and 100, got %s", r.Rate.String())
		}
	}
	if r.TaxType == TaxTypeFixed || r.TaxType == TaxTypeHybrid {
		if r.FixedAmount == nil {
			return invalidRule(r, "fixed amount is required for %s taxes", r.TaxType)
		}
		if r.FixedAmount.IsNegative() {
			return invalidRule(r, "fixed amount must not be negative")
		}
	}

	if r.MinimumTaxableAmount.IsNegative() {
		return invalidRule(r, "minimum taxable amount must not be negative")
	}
	if r.MaximumTaxAmount != nil && r.MaximumTaxAmount.IsNegative() {
		return invalidRule(r, "maximum tax amount must not be negative")
	}
	if r.StartsAt != nil && r.ExpiresAt != nil && r.ExpiresAt.Before(*r.StartsAt) {
		return invalidRule(r, "expires_at must not be before starts_at")
	}
	return nil
}

// ActiveAt reports whether the master switch is on and t lies inside [StartsAt, ExpiresAt].
func (r Rule) ActiveAt(t time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.StartsAt != nil && t.Before(*r.StartsAt) {
		return false
	}
	if r.ExpiresAt != nil && t.After(*r.ExpiresAt) {
		return false
	}
	return true
}

// rawTax computes the unrounded, uncapped tax on taxBase.
func (r Rule) rawTax(taxBase decimal.Decimal) decimal.Decimal {
	switch r.TaxType {
	case TaxTypePercentage:
		return taxBase.Mul(*r.Rate).Div(hundred)
	case TaxTypeFixed:
		return *r.FixedAmount
	case TaxTypeHybrid:
		return taxBase.Mul(*r.Rate).Div(hundred).Add(*r.FixedAmount)
	}
	return decimal.Zero
}

// SortRules returns a copy of rules ordered by PriorityOrder, then ID.
func SortRules(rules []Rule) []Rule {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PriorityOrder != sorted[j].PriorityOrder {
			return sorted[i].PriorityOrder < sorted[j].PriorityOrder
		}
		return strings.Compare(sorted[i].ID, sorted[j].ID) < 0
	})
	return sorted
}

func invalidRule(r Rule, format string, args ...any) error {
	return ierr.NewError("invalid tax rule "+r.ID).
		WithHintf(format, args...).
		WithReportableDetails(map[string]any{"rule_id": r.ID}).
		Mark(ierr.ErrInvalidRule)
}
