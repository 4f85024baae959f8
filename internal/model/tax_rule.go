package model

import (
	"time"

	"fleetadmin/internal/tax"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRule is the persisted form of a tax setting managed from the admin panel.
type TaxRule struct {
	ID                   uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                 string              `gorm:"type:varchar(255);not null" json:"name"`
	Description          string              `gorm:"type:text" json:"description"`
	TaxType              string              `gorm:"type:varchar(20);not null;index" json:"tax_type"`           // percentage, fixed, hybrid
	Rate                 decimal.NullDecimal `gorm:"type:decimal(7,4)" json:"rate"`                             // percent, 7.25 = 7.25%
	FixedAmount          decimal.NullDecimal `gorm:"type:decimal(18,4)" json:"fixed_amount"`                    // currency units
	CalculationMethod    string              `gorm:"type:varchar(20);not null;default:'simple'" json:"calculation_method"`
	MinimumTaxableAmount decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0" json:"minimum_taxable_amount"`
	MaximumTaxAmount     decimal.NullDecimal `gorm:"type:decimal(18,4)" json:"maximum_tax_amount"`
	IsInclusive          bool                `gorm:"not null;default:false" json:"is_inclusive"`

	ApplicableTo           string         `gorm:"type:varchar(20);not null;default:'all'" json:"applicable_to"`
	ApplicableZones        pq.StringArray `gorm:"type:text[]" json:"applicable_zones"`
	ExcludedZones          pq.StringArray `gorm:"type:text[]" json:"excluded_zones"`
	ApplicableVehicleTypes pq.StringArray `gorm:"type:text[]" json:"applicable_vehicle_types"`
	ExcludedVehicleTypes   pq.StringArray `gorm:"type:text[]" json:"excluded_vehicle_types"`
	ApplicableServices     pq.StringArray `gorm:"type:text[]" json:"applicable_services"`
	ExcludedServices       pq.StringArray `gorm:"type:text[]" json:"excluded_services"`

	PriorityOrder int        `gorm:"not null;default:0;index" json:"priority_order"`
	StartsAt      *time.Time `gorm:"index" json:"starts_at"`  // nullable = no lower bound
	ExpiresAt     *time.Time `gorm:"index" json:"expires_at"` // nullable = no upper bound
	IsActive      bool       `gorm:"not null;default:true;index" json:"is_active"`

	CreatedBy *uuid.UUID     `gorm:"type:uuid" json:"created_by"`
	UpdatedBy *uuid.UUID     `gorm:"type:uuid" json:"updated_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ToDomain converts the row into the engine's immutable rule snapshot.
func (r TaxRule) ToDomain() tax.Rule {
	return tax.Rule{
		ID:                     r.ID.String(),
		Name:                   r.Name,
		Description:            r.Description,
		TaxType:                tax.TaxType(r.TaxType),
		Rate:                   nullDecimalPtr(r.Rate),
		FixedAmount:            nullDecimalPtr(r.FixedAmount),
		CalculationMethod:      tax.CalculationMethod(r.CalculationMethod),
		MinimumTaxableAmount:   r.MinimumTaxableAmount,
		MaximumTaxAmount:       nullDecimalPtr(r.MaximumTaxAmount),
		IsInclusive:            r.IsInclusive,
		ApplicableTo:           tax.ApplicableTo(r.ApplicableTo),
		ApplicableZones:        cloneStrings(r.ApplicableZones),
		ExcludedZones:          cloneStrings(r.ExcludedZones),
		ApplicableVehicleTypes: cloneStrings(r.ApplicableVehicleTypes),
		ExcludedVehicleTypes:   cloneStrings(r.ExcludedVehicleTypes),
		ApplicableServices:     cloneStrings(r.ApplicableServices),
		ExcludedServices:       cloneStrings(r.ExcludedServices),
		PriorityOrder:          r.PriorityOrder,
		StartsAt:               r.StartsAt,
		ExpiresAt:              r.ExpiresAt,
		IsActive:               r.IsActive,
	}
}

// ApplyDomain copies the editable fields of rule onto the row. ID and audit columns are untouched.
func (r *TaxRule) ApplyDomain(rule tax.Rule) {
	r.Name = rule.Name
	r.Description = rule.Description
	r.TaxType = string(rule.TaxType)
	r.Rate = toNullDecimal(rule.Rate)
	r.FixedAmount = toNullDecimal(rule.FixedAmount)
	r.CalculationMethod = string(rule.CalculationMethod)
	r.MinimumTaxableAmount = rule.MinimumTaxableAmount
	r.MaximumTaxAmount = toNullDecimal(rule.MaximumTaxAmount)
	r.IsInclusive = rule.IsInclusive
	r.ApplicableTo = string(rule.ApplicableTo)
	r.ApplicableZones = pq.StringArray(cloneStrings(rule.ApplicableZones))
	r.ExcludedZones = pq.StringArray(cloneStrings(rule.ExcludedZones))
	r.ApplicableVehicleTypes = pq.StringArray(cloneStrings(rule.ApplicableVehicleTypes))
	r.ExcludedVehicleTypes = pq.StringArray(cloneStrings(rule.ExcludedVehicleTypes))
	r.ApplicableServices = pq.StringArray(cloneStrings(rule.ApplicableServices))
	r.ExcludedServices = pq.StringArray(cloneStrings(rule.ExcludedServices))
	r.PriorityOrder = rule.PriorityOrder
	r.StartsAt = rule.StartsAt
	r.ExpiresAt = rule.ExpiresAt
	r.IsActive = rule.IsActive
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
